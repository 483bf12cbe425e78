package codec

import (
	"bytes"
	"io"

	codecs "github.com/ugorji/go/codec"
)

// reused safely between encoders.
var jsonhandle = codecs.JsonHandle{Indent: 2}

func MarshalJsonIntoWriter(args interface{}, writer io.Writer) error {
	return codecs.NewEncoder(writer, &jsonhandle).Encode(args)
}

func MarshalJson(args interface{}) ([]byte, error) {
	var buffer bytes.Buffer
	if err := MarshalJsonIntoWriter(args, &buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func UnmarshalJson(data []byte, v interface{}) error {
	d := codecs.NewDecoderBytes(data, &jsonhandle)
	if err := d.Decode(v); err != nil {
		return err
	}
	return nil
}
