package config

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strconv"

	"github.com/jonathanMweiss/secretrecon/internal/codec"
	"github.com/jonathanMweiss/secretrecon/internal/errhandle"
)

// MetadataKey is the reserved document key holding n and k. Every other key is a share index.
const MetadataKey = "keys"

var (
	ErrMissingMetadata = errors.New("config: document has no metadata entry")
	ErrBadIndex        = errors.New("config: share index is not an integer")
	ErrBadBase         = errors.New("config: share base is not an integer")
	ErrDuplicateIndex  = errors.New("config: share index appears twice")
)

// Entry is one top-level value of a share document: either Metadata or a ShareRecord.
type Entry interface {
	isEntry()
}

// Metadata states the number of shares handed out (N) and the threshold needed to reconstruct (K).
type Metadata struct {
	N int
	K int
}

// ShareRecord is a raw share: the polynomial was evaluated at Index, and the result is written as
// Digits in the given Base. Decoding the digits is left to the caller.
type ShareRecord struct {
	Index  *big.Int
	Base   int
	Digits string
}

func (Metadata) isEntry()    {}
func (ShareRecord) isEntry() {}

// Document is a parsed share document. Shares are ordered by ascending index.
type Document struct {
	Metadata Metadata
	Shares   []ShareRecord
}

// entryWire is the union of both entry shapes as they appear in JSON.
type entryWire struct {
	N     int    `codec:"n,omitempty"`
	K     int    `codec:"k,omitempty"`
	Base  string `codec:"base,omitempty"`
	Value string `codec:"value,omitempty"`
}

// LoadDocument reads and parses the share document at path.
func LoadDocument(path string) (*Document, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := ParseDocument(bts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// ParseDocument parses a JSON share document. All malformed entries are reported together.
func ParseDocument(data []byte) (*Document, error) {
	raw := map[string]entryWire{}
	if err := codec.UnmarshalJson(data, &raw); err != nil {
		return nil, err
	}

	doc := &Document{}
	hasMetadata := false
	seen := map[string]string{}

	var errs []error
	for key, wire := range raw {
		entry, err := discriminate(key, wire)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		switch e := entry.(type) {
		case Metadata:
			doc.Metadata = e
			hasMetadata = true
		case ShareRecord:
			canonical := e.Index.String()
			if other, ok := seen[canonical]; ok {
				errs = append(errs, fmt.Errorf("%w: %q and %q", ErrDuplicateIndex, other, key))
				continue
			}

			seen[canonical] = key
			doc.Shares = append(doc.Shares, e)
		}
	}

	if !hasMetadata {
		errs = append(errs, ErrMissingMetadata)
	}

	if err := errhandle.AppendError(errs...); err != nil {
		return nil, err
	}

	sort.Slice(doc.Shares, func(i, j int) bool {
		return doc.Shares[i].Index.Cmp(doc.Shares[j].Index) < 0
	})

	return doc, nil
}

func discriminate(key string, wire entryWire) (Entry, error) {
	if key == MetadataKey {
		return Metadata{N: wire.N, K: wire.K}, nil
	}

	index, ok := new(big.Int).SetString(key, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadIndex, key)
	}

	base, err := strconv.Atoi(wire.Base)
	if err != nil {
		return nil, fmt.Errorf("%w: %q for share %s", ErrBadBase, wire.Base, key)
	}

	return ShareRecord{
		Index:  index,
		Base:   base,
		Digits: wire.Value,
	}, nil
}

func (d *Document) toWire() map[string]entryWire {
	raw := make(map[string]entryWire, len(d.Shares)+1)
	raw[MetadataKey] = entryWire{N: d.Metadata.N, K: d.Metadata.K}

	for _, shr := range d.Shares {
		raw[shr.Index.String()] = entryWire{
			Base:  strconv.Itoa(shr.Base),
			Value: shr.Digits,
		}
	}

	return raw
}

// Marshal returns the JSON form of the document.
func (d *Document) Marshal() ([]byte, error) {
	return codec.MarshalJson(d.toWire())
}

// Encode writes the JSON form of the document into w.
func (d *Document) Encode(w io.Writer) error {
	return codec.MarshalJsonIntoWriter(d.toWire(), w)
}

// WriteFile writes the JSON form of the document to path.
func (d *Document) WriteFile(path string) error {
	bts, err := d.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, bts, 0o644)
}
