package slug

import (
	"strings"
	"unicode"

	"github.com/speps/go-hashids/v2"
)

var encoder *hashids.HashID

func init() {
	hd := hashids.NewData()
	hd.Salt = "voteboard-slug"
	hd.MinLength = 6
	encoder, _ = hashids.NewWithData(hd)
}

// Make 根据标题和ID生成 slug, 末尾的 hashid 保证唯一
func Make(title string, id int64) string {
	base := Slugify(title)
	suffix, err := encoder.EncodeInt64([]int64{id})
	if err != nil || suffix == "" {
		return base
	}
	if base == "" {
		return strings.ToLower(suffix)
	}
	return base + "-" + strings.ToLower(suffix)
}

// Slugify 标题转 slug: 小写, 非字母数字折叠为单个连字符
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // 抑制开头的连字符
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
