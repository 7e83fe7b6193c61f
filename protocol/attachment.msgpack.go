package protocol

import (
	"encoding/base64"
	"encoding/json"

	"github.com/vmihailenco/msgpack"
)

// Transports that cannot carry raw binary frames still need a way to
// move attachments. The envelope used for that is a small JSON object
// holding the msgpack-encoded blob as base64:
//
//	{"base64":true,"data":"<base64 bytes>"}

type attachmentEnvelope struct {
	Base64 bool   `json:"base64"`
	Data   string `json:"data"`
}

// MarshalAttachment wraps one attachment blob in the text-safe
// envelope. An empty blob marshals to nil, there is nothing to send.
func MarshalAttachment(blob []byte) ([]byte, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	buf, err := msgpack.Marshal(blob)
	if err != nil {
		return nil, ErrEncodeFieldFailed.F(err)
	}

	return json.Marshal(attachmentEnvelope{
		Base64: true,
		Data:   base64.StdEncoding.EncodeToString(buf),
	})
}

// UnmarshalAttachment unwraps an envelope back into the attachment
// blob.
func UnmarshalAttachment(data []byte) ([]byte, error) {
	var env attachmentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrUnmarshalInitialFieldFailed.F(err)
	}

	raw := []byte(env.Data)
	if env.Base64 {
		var err error
		if raw, err = base64.StdEncoding.DecodeString(env.Data); err != nil {
			return nil, ErrDecodeBase64Failed.F(err)
		}
	}

	var blob []byte
	if err := msgpack.Unmarshal(raw, &blob); err != nil {
		return nil, ErrDecodeFieldFailed.F(err)
	}
	return blob, nil
}
