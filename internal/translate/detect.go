package translate

import (
	wlg "github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// AlreadyIn reports whether text is reliably detected as written in the
// language of target. Short or ambiguous texts report false.
func AlreadyIn(text, target string) bool {
	if len(text) == 0 {
		return false
	}
	tag, err := language.Parse(target)
	if err != nil {
		return false
	}
	base, _ := tag.Base()

	info := wlg.Detect(text)
	if !info.IsReliable() {
		return false
	}
	return info.Lang.Iso6391() == base.String()
}
