package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXORKeystream(t *testing.T) {
	key := []byte{0x01, 0x02, 0x04}

	tests := []struct {
		name     string
		input    []byte
		offset   int
		expected []byte
	}{
		{
			name:     "オフセット0",
			input:    []byte{0x00, 0x00, 0x00, 0x00},
			offset:   0,
			expected: []byte{0x01, 0x02, 0x04, 0x01},
		},
		{
			name:     "オフセット2で折り返し",
			input:    []byte{0x00, 0x00, 0x00},
			offset:   2,
			expected: []byte{0x04, 0x01, 0x02},
		},
		{
			name:     "キー長を超えるオフセット",
			input:    []byte{0x10, 0x10},
			offset:   4,
			expected: []byte{0x12, 0x14},
		},
		{
			name:     "空データ",
			input:    []byte{},
			offset:   1,
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte{}, tt.input...)
			XORKeystream(data, key, tt.offset)
			assert.Equal(t, tt.expected, data)
		})
	}
}

func TestXORKeystream_RoundTrip(t *testing.T) {
	// 2回適用すると元に戻ることを確認
	original := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	key := []byte("dsfd;kfoA")
	data := append([]byte{}, original...)

	XORKeystream(data, key, 5)
	assert.NotEqual(t, original, data)
	XORKeystream(data, key, 5)
	assert.Equal(t, original, data)
}

func TestXORKeystream_EmptyKey(t *testing.T) {
	data := []byte{0x01, 0x02}
	XORKeystream(data, nil, 3)
	assert.Equal(t, []byte{0x01, 0x02}, data)
}
