package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/internal/domain/service"
	"github.com/Badsnus/qrforge/pkg/logger"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

func newQrService() *service.QrService {
	return service.NewQrService(service.NewPayloadFormatter(false), logger.Nop())
}

func writeLogo(t *testing.T, dir string, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestQrService_Generate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wifi := entity.WiFi{SSID: "Home", Password: "secret1", Security: entity.SecurityWPA}

	t.Run("renders with the given options", func(t *testing.T) {
		t.Parallel()
		a, err := newQrService().Generate(ctx, wifi, entity.DefaultRenderOptions())
		require.NoError(t, err)

		assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret1;H:false;;", a.Payload)
		assert.Equal(t, entity.KindWiFi, a.Kind)
		assert.Equal(t, qr.M, a.Code.Level)
		side := (a.Code.Size() + 2*4) * 5
		assert.Equal(t, image.Rect(0, 0, side, side), a.Image.Bounds())
	})

	t.Run("overlays the logo on the raster", func(t *testing.T) {
		t.Parallel()
		opts := entity.DefaultRenderOptions()
		opts.Level = entity.LevelH
		opts.LogoPath = writeLogo(t, t.TempDir(), color.NRGBA{R: 255, A: 255})

		a, err := newQrService().Generate(ctx, wifi, opts)
		require.NoError(t, err)

		b := a.Image.Bounds()
		assert.Equal(t, (a.Code.Size()+8)*5, b.Dx())
		cx, cy := b.Dx()/2, b.Dy()/2
		c := color.NRGBAModel.Convert(a.Image.At(cx, cy)).(color.NRGBA)
		assert.Greater(t, c.R, uint8(200))
		assert.Less(t, c.G, uint8(60))
	})

	t.Run("blank required field is a validation error", func(t *testing.T) {
		t.Parallel()
		_, err := newQrService().Generate(ctx, entity.WiFi{}, entity.DefaultRenderOptions())
		assert.True(t, errorz.IsValidation(err))
	})

	t.Run("bad scale is a validation error", func(t *testing.T) {
		t.Parallel()
		opts := entity.DefaultRenderOptions()
		opts.Scale = 0
		_, err := newQrService().Generate(ctx, wifi, opts)
		assert.True(t, errorz.IsValidation(err))
	})

	t.Run("malformed color is a library error", func(t *testing.T) {
		t.Parallel()
		opts := entity.DefaultRenderOptions()
		opts.Dark = "#12"
		_, err := newQrService().Generate(ctx, wifi, opts)
		assert.True(t, errorz.IsLibrary(err))
		assert.Contains(t, err.Error(), "dark")
	})

	t.Run("oversized payload is a library error", func(t *testing.T) {
		t.Parallel()
		_, err := newQrService().Generate(ctx, entity.PlainText{Text: strings.Repeat("x", 8000)}, entity.DefaultRenderOptions())
		assert.True(t, errorz.IsLibrary(err))
	})

	t.Run("unreadable logo is an io error", func(t *testing.T) {
		t.Parallel()
		opts := entity.DefaultRenderOptions()
		opts.LogoPath = filepath.Join(t.TempDir(), "missing.png")
		_, err := newQrService().Generate(ctx, wifi, opts)
		assert.True(t, errorz.IsIO(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newQrService().Generate(cctx, wifi, entity.DefaultRenderOptions())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestQrService_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	record := entity.URL{URL: "https://example.com"}

	t.Run("png keeps the composited raster", func(t *testing.T) {
		t.Parallel()
		svc := newQrService()
		a, err := svc.Generate(ctx, record, entity.DefaultRenderOptions())
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "nested", "dir", "code.png")
		notice, err := svc.Save(a, path)
		require.NoError(t, err)
		assert.Empty(t, notice)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, a.Image.Bounds(), img.Bounds())
	})

	t.Run("svg omits the logo and returns a notice", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		svc := newQrService()
		opts := entity.DefaultRenderOptions()
		opts.LogoPath = writeLogo(t, dir, color.NRGBA{B: 255, A: 255})
		a, err := svc.Generate(ctx, record, opts)
		require.NoError(t, err)

		path := filepath.Join(dir, "code.SVG")
		notice, err := svc.Save(a, path)
		require.NoError(t, err)
		assert.Equal(t, entity.NoticeLogoOmitted, notice)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
		assert.NotContains(t, string(data), "<image")
		assert.NotContains(t, string(data), "#0000ff")
	})

	t.Run("svg without logo has no notice", func(t *testing.T) {
		t.Parallel()
		svc := newQrService()
		a, err := svc.Generate(ctx, record, entity.DefaultRenderOptions())
		require.NoError(t, err)

		notice, err := svc.Save(a, filepath.Join(t.TempDir(), "code.svg"))
		require.NoError(t, err)
		assert.Empty(t, notice)
	})

	t.Run("unwritable path is an io error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		svc := newQrService()
		a, err := svc.Generate(ctx, record, entity.DefaultRenderOptions())
		require.NoError(t, err)

		_, err = svc.Save(a, filepath.Join(blocker, "code.png"))
		assert.True(t, errorz.IsIO(err))
	})

	t.Run("unsupported extension is rejected before writing", func(t *testing.T) {
		t.Parallel()
		svc := newQrService()
		a, err := svc.Generate(ctx, record, entity.DefaultRenderOptions())
		require.NoError(t, err)

		dir := filepath.Join(t.TempDir(), "out")
		for _, name := range []string{"code.jpg", "code"} {
			path := filepath.Join(dir, name)
			_, err = svc.Save(a, path)

			var verr *errorz.ValidationError
			require.ErrorAs(t, err, &verr, name)
			assert.Equal(t, "output", verr.Field)
			assert.NoFileExists(t, path)
		}
		assert.NoDirExists(t, dir)
	})

	t.Run("nothing to save", func(t *testing.T) {
		t.Parallel()
		_, err := newQrService().Save(nil, filepath.Join(t.TempDir(), "code.png"))
		assert.ErrorIs(t, err, errorz.ErrNothingGenerated)
	})
}

func TestQrService_Write(t *testing.T) {
	t.Parallel()

	svc := newQrService()
	a, err := svc.Generate(context.Background(), entity.Phone{Number: "+15551234"}, entity.DefaultRenderOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	notice, err := svc.Write(&buf, a, qr.PNG)
	require.NoError(t, err)
	assert.Empty(t, notice)
	_, err = png.Decode(&buf)
	assert.NoError(t, err)
}
