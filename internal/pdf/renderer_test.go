package pdf

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chromeOrSkip ищет браузер; без него тесты рендеринга пропускаются
func chromeOrSkip(t *testing.T) string {
	t.Helper()
	if path := os.Getenv("CHROME_PATH"); path != "" {
		return path
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("headless chrome is not installed")
	return ""
}

func newTestRenderer(t *testing.T) *Renderer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewRenderer(chromeOrSkip(t), 30*time.Second, logger)
	t.Cleanup(r.Close)
	return r
}

func TestRender_ProducesPDF(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(context.Background(), `<!DOCTYPE html><html><body><table><tr><td>Zara Serrano</td></tr></table><p>Detalle</p></body></html>`)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_ZeroHeight(t *testing.T) {
	r := newTestRenderer(t)

	_, err := r.Render(context.Background(), `<!DOCTYPE html><html><head><style>html, body { margin: 0; height: 0; overflow: hidden; }</style></head><body></body></html>`)

	assert.ErrorIs(t, err, ErrZeroHeight)
}

func TestRender_CancelledContext(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, `<p>cancelado</p>`)

	assert.Error(t, err)
}

func TestRender_RestartsAfterBrowserLoss(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.Render(context.Background(), `<p>primero</p>`)
	require.NoError(t, err)

	// Браузер пропал между запросами
	r.mu.Lock()
	r.cancelBrowser()
	r.mu.Unlock()

	out, err := r.Render(context.Background(), `<p>segundo</p>`)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_TransparentTextIsPrinted(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Render(context.Background(), `<!DOCTYPE html><html><head><style>p { color: rgba(0, 0, 0, 0); }</style></head><body><p>Texto visible</p></body></html>`)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
