package protocol

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	itst "github.com/sionet/siowire/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadStr(t *testing.T) {
	var opts []testoption

	type (
		testFn          func(*testing.T)
		testParamsInFn  func(Payload, string, error) testFn
		testParamsOutFn func(*testing.T) (Payload, string, error)
	)

	runWithOptions := map[string]testParamsInFn{
		"Decode": func(output Payload, input string, xErr error) testFn {
			return func(t *testing.T) {
				for _, opt := range opts {
					opt(t)
				}

				var have Payload
				var err = NewPayloadDecoder(strings.NewReader(input)).Decode(&have)

				assert.ErrorIs(t, err, xErr)
				assert.Equal(t, output, have)
			}
		},
		"Encode": func(input Payload, output string, xErr error) testFn {
			return func(t *testing.T) {
				for _, opt := range opts {
					opt(t)
				}

				var have = new(bytes.Buffer)
				var err = NewPayloadEncoder(have).Encode(input)

				assert.ErrorIs(t, err, xErr)
				assert.Equal(t, output, have.String())
			}
		},
		"ReadPayload": func(output Payload, input string, xErr error) testFn {
			return func(t *testing.T) {
				for _, opt := range opts {
					opt(t)
				}

				var have Payload
				var decoder _payloadDecoder = NewPayloadDecoder
				var err = decoder.From(strings.NewReader(input)).ReadPayload(&have)

				assert.ErrorIs(t, err, xErr)
				assert.Equal(t, output, have)
			}
		},
		"WritePayload": func(input Payload, output string, xErr error) testFn {
			return func(t *testing.T) {
				for _, opt := range opts {
					opt(t)
				}

				var encoder _payloadEncoder = NewPayloadEncoder

				var have = new(bytes.Buffer)
				var err = encoder.To(have).WritePayload(input)

				assert.ErrorIs(t, err, xErr)
				assert.Equal(t, output, have.String())
			}
		},
	}

	spec := map[string]testParamsOutFn{
		"Single": func(*testing.T) (Payload, string, error) {
			opts = nil
			asString := `6:1Hello`
			asPayload := Payload{{T: ClosePacket, D: []byte("Hello")}}
			return asPayload, asString, nil
		},
		"Sequence": func(*testing.T) (Payload, string, error) {
			opts = nil
			asString := `6:1Hello11:1HelloWorld`
			asPayload := Payload{
				{T: ClosePacket, D: []byte("Hello")},
				{T: ClosePacket, D: []byte("HelloWorld")},
			}
			return asPayload, asString, nil
		},
		"Non ASCII": func(*testing.T) (Payload, string, error) {
			opts = nil

			// frame lengths count characters, not bytes
			asString := "6:4hello2:4€"
			asPayload := Payload{
				{T: MessagePacket, D: []byte("hello")},
				{T: MessagePacket, D: []byte("€")},
			}
			return asPayload, asString, nil
		},
		"Binary": func(*testing.T) (Payload, string, error) {
			opts = nil
			asString := `10:b4AQIDBA==`
			asPayload := Payload{{T: MessagePacket, D: []byte{1, 2, 3, 4}, IsBinary: true}}
			return asPayload, asString, nil
		},
		"Mixed": func(*testing.T) (Payload, string, error) {
			opts = nil
			asString := `6:2probe10:b4AQIDBA==1:6`
			asPayload := Payload{
				{T: PingPacket, D: []byte("probe")},
				{T: MessagePacket, D: []byte{1, 2, 3, 4}, IsBinary: true},
				{T: NoopPacket},
			}
			return asPayload, asString, nil
		},
		"Empty": func(*testing.T) (Payload, string, error) {
			opts = nil
			return nil, ``, nil
		},

		// extra
		"Err No Length": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}
			return nil, `abc`, ErrIncompletePacket
		},
		"Err Empty Length": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}
			return nil, `:1`, ErrIncompletePacket
		},
		"Err Zero Length": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}
			return nil, `0:`, ErrIncompletePacket
		},
		"Err Signed Length": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}

			// the length is a bare digit run, an explicit sign never
			// decodes (and so never round-trips to a different frame)
			return nil, `+6:1Hello`, ErrIncompletePacket
		},
		"Err Short Frame": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}

			// the frames ahead of the failure are discarded with it
			return nil, `6:1Hello8:1Hell`, ErrIncompletePacket
		},
		"Err Missing Frame": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}
			return nil, `6:`, ErrIncompletePacket
		},
		"Err Bad Base64": func(*testing.T) (Payload, string, error) {
			opts = []testoption{itst.DoNotTest("Encode", "WritePayload")}
			return nil, `6:b4!!!!`, base64.CorruptInputError(0)
		},
	}

	for name, testParams := range spec {
		for suffix, run := range runWithOptions {
			t.Run(fmt.Sprintf("%s.%s", name, suffix), run(testParams(t)))
		}
	}
}

// encode(decode(f)) == f for any well formed frame sequence
func TestPayloadStrReflexive(t *testing.T) {
	for _, frame := range []string{
		`6:1Hello`,
		`6:4hello10:b4AQIDBA==6:2probe1:5`,
		"2:4€11:4HelloWorld",
		`13:0{"sid":"ab"}`,
	} {
		var payload Payload
		require.NoError(t, NewPayloadDecoder(strings.NewReader(frame)).Decode(&payload), frame)

		var have = new(bytes.Buffer)
		require.NoError(t, NewPayloadEncoder(have).Encode(payload), frame)
		assert.Equal(t, frame, have.String())
	}
}
