// Package unicodec は UTF-16 のコードユニット列、UTF-8 のバイト列と
// Unicode コードポイント列の間を厳密に相互変換します。
//
// 不正な入力は置換文字に読み替えず、すべてエラーとして報告します:
//   - UTF-16: 対になっていないサロゲート、順序の逆転したサロゲート
//   - UTF-8: 無効な先頭バイト、孤立した継続バイト、途切れた列、最短でないエンコーディング
//   - コードポイント: 範囲外の値、単独のサロゲート
//
// すべての関数は副作用を持たず、並行に呼び出しても安全です。
package unicodec

const (
	// 0xD800-0xDC00 はサロゲートペアの上位 10 ビット、
	// 0xDC00-0xE000 は下位 10 ビットを表し、値はその 20 ビットに 0x10000 を加えたものです。
	surr1 = 0xD800
	surr2 = 0xDC00
	surr3 = 0xE000

	surrSelf = 0x10000

	// MaxCodePoint は有効なコードポイントの上限です (この値自体は含みません)
	MaxCodePoint = 0x10FFFF
)

const (
	opDecodeUTF16 = "DecodeUTF16"
	opEncodeUTF16 = "EncodeUTF16"
	opDecodeUTF8  = "DecodeUTF8"
	opEncodeUTF8  = "EncodeUTF8"
)

func isLeadSurrogate(u uint16) bool {
	return surr1 <= u && u < surr2
}

func isTrailSurrogate(u uint16) bool {
	return surr2 <= u && u < surr3
}

// checkCodePoint はコードポイントが単独で表現可能かを確認します
func checkCodePoint(cp rune) error {
	if cp < 0 || cp >= MaxCodePoint {
		return ErrInvalidCodePoint
	}
	if surr1 <= cp && cp < surr3 {
		return ErrSurrogateCodePoint
	}
	return nil
}

// DecodeUTF16 は UTF-16 のコードユニット列をコードポイント列に変換します
func DecodeUTF16(units []uint16) ([]rune, error) {
	out := make([]rune, 0, len(units))

	var lead rune
	hasLead := false
	for i, u := range units {
		switch {
		case isLeadSurrogate(u):
			if hasLead {
				return nil, newError(opDecodeUTF16, i, rune(u), ErrLeadAfterLead)
			}
			// 下位サロゲートが来るまで保留
			lead = (rune(u) - surr1) << 10
			hasLead = true
		case isTrailSurrogate(u):
			if !hasLead {
				return nil, newError(opDecodeUTF16, i, rune(u), ErrTrailWithoutLead)
			}
			out = append(out, lead+(rune(u)-surr2)+surrSelf)
			hasLead = false
		default:
			if hasLead {
				return nil, newError(opDecodeUTF16, i, rune(u), ErrMissingTrail)
			}
			out = append(out, rune(u))
		}
	}

	if hasLead {
		last := len(units) - 1
		return nil, newError(opDecodeUTF16, last, rune(units[last]), ErrDanglingLead)
	}

	return out, nil
}

// EncodeUTF16 はコードポイント列を UTF-16 のコードユニット列に変換します
func EncodeUTF16(codePoints []rune) ([]uint16, error) {
	out := make([]uint16, 0, len(codePoints))

	for i, cp := range codePoints {
		if err := checkCodePoint(cp); err != nil {
			return nil, newError(opEncodeUTF16, i, cp, err)
		}

		if cp >= surrSelf {
			rest := cp - surrSelf
			out = append(out,
				uint16(surr1+((rest>>10)&0x3FF)),
				uint16(surr2+(rest&0x3FF)),
			)
		} else {
			out = append(out, uint16(cp))
		}
	}

	return out, nil
}

// sequenceLength はコードポイントを表現するのに必要な最小のバイト数を返します
func sequenceLength(cp rune) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

// utf8Sequence は組み立て中のマルチバイト列の状態です
type utf8Sequence struct {
	active    bool
	value     rune
	remaining int // 残りの継続バイト数
	length    int // 先頭バイトを含む列全体の長さ
	start     int // 先頭バイトの位置
}

// DecodeUTF8 は UTF-8 のバイト列をコードポイント列に変換します。
// 4 バイト列が 0xFFFF 以下の値を表す場合も最短でないエンコーディングとして拒否します。
func DecodeUTF8(data []byte) ([]rune, error) {
	out := make([]rune, 0, len(data))

	var seq utf8Sequence
	for i, b := range data {
		switch {
		case b&0x80 == 0:
			if seq.active {
				return nil, newError(opDecodeUTF8, i, rune(b), seqError(ErrUnexpectedLowByte, seq))
			}
			out = append(out, rune(b))

		case b&0xC0 == 0x80:
			if !seq.active {
				return nil, newError(opDecodeUTF8, i, rune(b), ErrOrphanContinuation)
			}
			seq.value = (seq.value << 6) | rune(b&0x3F)
			seq.remaining--
			if seq.remaining > 0 {
				continue
			}

			// 最短のエンコーディングのみ有効
			if need := sequenceLength(seq.value); need != seq.length {
				return nil, newError(opDecodeUTF8, i, seq.value, overlongError(seq.length, need))
			}
			out = append(out, seq.value)
			seq = utf8Sequence{}

		default:
			if seq.active {
				return nil, newError(opDecodeUTF8, i, rune(b), seqError(ErrUnfinishedSequence, seq))
			}

			switch {
			case b&0xF8 == 0xF0:
				seq.length, seq.value = 4, rune(b&0x07)
			case b&0xF0 == 0xE0:
				seq.length, seq.value = 3, rune(b&0x0F)
			case b&0xE0 == 0xC0:
				seq.length, seq.value = 2, rune(b&0x1F)
			default:
				return nil, newError(opDecodeUTF8, i, rune(b), ErrInvalidLeadByte)
			}
			seq.active = true
			seq.remaining = seq.length - 1
			seq.start = i
		}
	}

	if seq.active {
		return nil, newError(opDecodeUTF8, seq.start, rune(data[seq.start]), seqError(ErrTruncated, seq))
	}

	return out, nil
}

// EncodeUTF8 はコードポイント列を最短の UTF-8 バイト列に変換します
func EncodeUTF8(codePoints []rune) ([]byte, error) {
	out := make([]byte, 0, len(codePoints))

	for i, cp := range codePoints {
		if err := checkCodePoint(cp); err != nil {
			return nil, newError(opEncodeUTF8, i, cp, err)
		}

		switch sequenceLength(cp) {
		case 1:
			out = append(out, byte(cp))
		case 2:
			out = append(out,
				0xC0|byte((cp>>6)&0x1F),
				0x80|byte(cp&0x3F),
			)
		case 3:
			out = append(out,
				0xE0|byte((cp>>12)&0x0F),
				0x80|byte((cp>>6)&0x3F),
				0x80|byte(cp&0x3F),
			)
		default:
			out = append(out,
				0xF0|byte((cp>>18)&0x07),
				0x80|byte((cp>>12)&0x3F),
				0x80|byte((cp>>6)&0x3F),
				0x80|byte(cp&0x3F),
			)
		}
	}

	return out, nil
}

// StringToUTF16 は Go の文字列を厳密に検証しながら UTF-16 のコードユニット列に変換します
func StringToUTF16(s string) ([]uint16, error) {
	codePoints, err := DecodeUTF8([]byte(s))
	if err != nil {
		return nil, err
	}
	return EncodeUTF16(codePoints)
}

// UTF16ToString は UTF-16 のコードユニット列を Go の文字列に変換します
func UTF16ToString(units []uint16) (string, error) {
	codePoints, err := DecodeUTF16(units)
	if err != nil {
		return "", err
	}
	data, err := EncodeUTF8(codePoints)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
