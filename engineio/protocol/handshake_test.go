package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandshake(t *testing.T) {
	type testParamsOutFn func(*testing.T) (string, *Handshake, error)

	spec := map[string]testParamsOutFn{
		"Handshake": func(*testing.T) (string, *Handshake, error) {
			asString := `{"sid":"lv_VI97HAXpY6yYWAAAC","upgrades":["websocket"],"pingInterval":25000,"pingTimeout":5000}`
			asHandshake := &Handshake{
				SID:          "lv_VI97HAXpY6yYWAAAC",
				Upgrades:     []string{"websocket"},
				PingInterval: Duration(25000 * time.Millisecond),
				PingTimeout:  Duration(5000 * time.Millisecond),
			}
			return asString, asHandshake, nil
		},
		"No Upgrades": func(*testing.T) (string, *Handshake, error) {
			asString := `{"sid":"abc123","upgrades":[],"pingInterval":300,"pingTimeout":200}`
			asHandshake := &Handshake{
				SID:          "abc123",
				Upgrades:     []string{},
				PingInterval: Duration(300 * time.Millisecond),
				PingTimeout:  Duration(200 * time.Millisecond),
			}
			return asString, asHandshake, nil
		},
		"Err Missing SID": func(*testing.T) (string, *Handshake, error) {
			asString := `{"upgrades":[],"pingInterval":300,"pingTimeout":200}`
			return asString, nil, ErrInvalidHandshake
		},
		"Err Missing PingInterval": func(*testing.T) (string, *Handshake, error) {
			asString := `{"sid":"abc123","upgrades":[],"pingTimeout":200}`
			return asString, nil, ErrInvalidHandshake
		},
		"Err Missing PingTimeout": func(*testing.T) (string, *Handshake, error) {
			asString := `{"sid":"abc123","upgrades":[],"pingInterval":300}`
			return asString, nil, ErrInvalidHandshake
		},
		"Err Bad JSON": func(*testing.T) (string, *Handshake, error) {
			return `{"sid":"abc1`, nil, ErrHandshakeDecode
		},
		"Err Not an Object": func(*testing.T) (string, *Handshake, error) {
			return `"test"`, nil, ErrHandshakeDecode
		},
		"Err Mistyped SID": func(*testing.T) (string, *Handshake, error) {
			return `{"sid":7,"upgrades":[],"pingInterval":300,"pingTimeout":200}`, nil, ErrHandshakeDecode
		},
		"Err Negative PingInterval": func(*testing.T) (string, *Handshake, error) {
			// the timing fields are unsigned on the wire, a sign is a
			// decode error rather than a value
			return `{"sid":"x","upgrades":[],"pingInterval":-25000,"pingTimeout":5000}`, nil, ErrHandshakeDecode
		},
		"Err Signed PingTimeout": func(*testing.T) (string, *Handshake, error) {
			return `{"sid":"x","upgrades":[],"pingInterval":25000,"pingTimeout":+5000}`, nil, ErrHandshakeDecode
		},
	}

	for name, testParams := range spec {
		data, want, xErr := testParams(t)
		t.Run(name, func(t *testing.T) {
			have, err := ParseHandshake(Packet{T: OpenPacket, D: []byte(data)})

			assert.ErrorIs(t, err, xErr)
			assert.Equal(t, want, have)
		})
	}
}

// the decode is driven by the payload alone, the packet type is the
// caller's problem
func TestParseHandshakeIgnoresPacketType(t *testing.T) {
	data := []byte(`{"sid":"x","upgrades":[],"pingInterval":1,"pingTimeout":2}`)

	have, err := ParseHandshake(Packet{T: MessagePacket, D: data})
	require.NoError(t, err)
	assert.Equal(t, "x", have.SID)
}

func TestHandshakeMarshal(t *testing.T) {
	hand := &Handshake{
		SID:          "Test",
		Upgrades:     []string{"websocket", "test"},
		PingInterval: Duration(10000 * time.Millisecond),
		PingTimeout:  Duration(1000 * time.Millisecond),
	}

	data, err := hand.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"sid":"Test","upgrades":["websocket","test"],"pingInterval":10000,"pingTimeout":1000}`, string(data))

	have, err := ParseHandshake(Packet{T: OpenPacket, D: data})
	require.NoError(t, err)
	assert.Equal(t, hand, have)
}

func TestHandshakeMarshalNilUpgrades(t *testing.T) {
	data, err := (&Handshake{SID: "x"}).Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"sid":"x","upgrades":[],"pingInterval":0,"pingTimeout":0}`, string(data))
}
