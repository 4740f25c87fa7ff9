package pdf

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// ErrZeroHeight - документ загрузился, но печатать нечего
var ErrZeroHeight = errors.New("rendered document has zero height")

// A4 в дюймах
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

const browserPingTimeout = 5 * time.Second

// Готовность контента: шрифты загружены, изображения загружены или упали.
// Элементы с полностью прозрачным вычисленным цветом текста становятся черными.
// Возвращает высоту body.
const readinessScript = `(async () => {
	await document.fonts.ready;
	await Promise.all(Array.from(document.images)
		.filter((img) => !img.complete)
		.map((img) => new Promise((resolve) => { img.onload = resolve; img.onerror = resolve; })));
	for (const el of document.querySelectorAll("body, body *")) {
		const color = getComputedStyle(el).color;
		if (color === "transparent" || /^rgba\(.*,\s*0(\.0+)?\)$/.test(color)) {
			el.style.setProperty("color", "#000000", "important");
		}
	}
	return document.body ? document.body.scrollHeight : 0;
})()`

// Renderer печатает HTML в PDF через общий headless Chrome.
// Каждый вызов Render открывает и всегда закрывает свою вкладку.
type Renderer struct {
	opts          []chromedp.ExecAllocatorOption
	allocCtx      context.Context
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	timeout       time.Duration
	logger        *logrus.Logger

	mu      sync.Mutex
	started bool
}

func NewRenderer(chromePath string, timeout time.Duration, logger *logrus.Logger) *Renderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	r := &Renderer{
		opts:    opts,
		timeout: timeout,
		logger:  logger,
	}
	r.newContexts()
	return r
}

// newContexts создает аллокатор и контекст браузера. Вызывается под mu или до первого использования.
func (r *Renderer) newContexts() {
	r.allocCtx, r.cancelAlloc = chromedp.NewExecAllocator(context.Background(), r.opts...)
	r.browserCtx, r.cancelBrowser = chromedp.NewContext(r.allocCtx)
}

func (r *Renderer) resetContexts() {
	r.cancelBrowser()
	r.cancelAlloc()
	r.newContexts()
	r.started = false
}

// ensureBrowser запускает браузер при первом обращении.
// После неудачного запуска или падения браузера следующая попытка повторит старт.
func (r *Renderer) ensureBrowser() (context.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started && r.browserCtx.Err() == nil {
		return r.browserCtx, nil
	}
	if r.started {
		r.logger.Warn("Headless browser is gone, restarting")
		r.resetContexts()
	}
	if err := chromedp.Run(r.browserCtx); err != nil {
		r.resetContexts()
		return nil, fmt.Errorf("failed to start headless browser: %w", err)
	}
	r.started = true
	r.logger.Info("Headless browser started")
	return r.browserCtx, nil
}

// checkBrowser после ошибки рендера проверяет, что браузер отвечает.
// Если нет, контекст браузера отменяется и следующий Render запустит новый.
func (r *Renderer) checkBrowser(browserCtx context.Context) {
	pingCtx, cancel := context.WithTimeout(browserCtx, browserPingTimeout)
	defer cancel()
	err := chromedp.Run(pingCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, _, _, _, _, err := browser.GetVersion().Do(ctx)
		return err
	}))
	if err == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browserCtx == browserCtx {
		r.logger.WithError(err).Warn("Headless browser does not respond")
		r.cancelBrowser()
	}
}

// Render загружает документ во вкладку, ждет готовности и печатает A4 с фоном
func (r *Renderer) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	browserCtx, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx)
	defer cancelTab()
	// Отмена запроса закрывает вкладку
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	var (
		height float64
		pdf    []byte
	)
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(readinessScript, &height, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		if ctx.Err() == nil {
			r.checkBrowser(browserCtx)
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if height <= 0 {
		return nil, ErrZeroHeight
	}

	err = chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		buf, _, err := page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(a4WidthInches).
			WithPaperHeight(a4HeightInches).
			WithPreferCSSPageSize(true).
			Do(ctx)
		if err != nil {
			return err
		}
		pdf = buf
		return nil
	}))
	if err != nil {
		if ctx.Err() == nil {
			r.checkBrowser(browserCtx)
		}
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"height": height,
		"bytes":  len(pdf),
	}).Debug("Document rendered to pdf")
	return pdf, nil
}

// Close останавливает браузер
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelBrowser()
	r.cancelAlloc()
}
