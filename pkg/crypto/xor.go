// Package crypto はパスワードの難読化に使われる XOR ベースの変換を提供します。
//
// 暗号学的な安全性はありません。既存の形式とバイト単位で互換にするためのものです。
package crypto

// XORKeystream はデータの各バイトを繰り返しキーで XOR します。
// i 番目のバイトには key[(offset+i) % len(key)] を使います。
// 同じキーとオフセットでもう一度適用すると元のデータに戻ります。
func XORKeystream(data []byte, key []byte, offset int) {
	if len(key) == 0 {
		return
	}
	pos := offset % len(key)
	if pos < 0 {
		pos += len(key)
	}
	for i := range data {
		data[i] ^= key[pos]
		pos++
		if pos == len(key) {
			pos = 0
		}
	}
}
