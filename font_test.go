package box

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/box/text"
)

var testFontOnce sync.Once

// registerTestFont registers the embedded Go Regular face under the
// default theme font name.
func registerTestFont(t *testing.T) {
	t.Helper()
	testFontOnce.Do(func() {
		src, err := text.NewSource("default", goregular.TTF)
		if err != nil {
			panic(err)
		}
		text.Register("default", src)
	})
}
