package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/app"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	resolver *mocks.MockRootResolver
	loader   *mocks.MockConfigLoader
	scanner  *mocks.MockAssetScanner
	sampler  *mocks.MockImageSampler
	writer   *mocks.MockOutputWriter
	logger   *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		resolver: mocks.NewMockRootResolver(ctrl),
		loader:   mocks.NewMockConfigLoader(ctrl),
		scanner:  mocks.NewMockAssetScanner(ctrl),
		sampler:  mocks.NewMockImageSampler(ctrl),
		writer:   mocks.NewMockOutputWriter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.resolver, m.loader, m.scanner, m.sampler, m.writer, m.logger)
	return a, m
}

func outputNamed(outs []domain.Output, name string) string {
	for _, o := range outs {
		if o.Name == name {
			return string(o.Content)
		}
	}
	return ""
}

func TestApp_Run(t *testing.T) {
	a, m := newTestApp(t)
	path := filepath.Join("/pkg", "UIPack")
	round := filepath.Join(path, "Blue", "Default", "button_round_start.png")
	slider := filepath.Join(path, "Blue", "Default", "slide_vertical_color.png")
	arrow := filepath.Join(path, "Blue", "Default", "arrow_basic_n_small.png")

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(path, "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(path).Return([]string{arrow, round, slider}, nil)
	// Only the round button needs sampling.
	m.sampler.EXPECT().Sample(round).Return(domain.NewBitmapInfo(32, 32, colorful.Color{R: 1, G: 1, B: 1}), nil)

	var written []domain.Output
	m.writer.EXPECT().Write(path, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, outs ...domain.Output) error {
			written = outs
			return nil
		})

	err := a.Run(context.Background(), app.RunOptions{Path: path})
	require.NoError(t, err)

	uss := outputNamed(written, domain.DefaultStylesheetFile)
	assert.Contains(t, uss, ".blue.button_round_start {\n")
	assert.Contains(t, uss, ".blue.slide_vertical_color .unity-base-slider--vertical .unity-base-slider__tracker {\n")
	assert.NotContains(t, uss, ".blue.arrow_basic_n_small")

	uxml := outputNamed(written, domain.DefaultLayoutFile)
	assert.Contains(t, uxml, `<ui:Button class="blue button_round_start" text="button_round_start" />`)
}

func TestApp_Run_RootError(t *testing.T) {
	a, m := newTestApp(t)

	m.resolver.EXPECT().Resolve(gomock.Any(), "/nowhere").
		Return("", zerr.Wrap(domain.ErrRootInvalid, "please provide a valid package root"))

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/UIPack", Root: "/nowhere"})
	require.ErrorIs(t, err, domain.ErrRootInvalid)
}

func TestApp_Run_ConfigError(t *testing.T) {
	a, m := newTestApp(t)

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "custom.yaml").Return(domain.StyleConfig{}, domain.ErrConfigInvalid)

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/UIPack", ConfigPath: "custom.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestApp_Run_TargetMissingIsFatal(t *testing.T) {
	a, m := newTestApp(t)

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrTargetNotFound, "invalid path"))

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/Missing"})
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestApp_Run_ImageErrorIsFatal(t *testing.T) {
	a, m := newTestApp(t)
	good := "/pkg/UIPack/Blue/Default/button_round_a.png"
	bad := "/pkg/UIPack/Blue/Default/button_round_b.png"

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(gomock.Any()).Return([]string{good, bad}, nil)
	m.sampler.EXPECT().Sample(good).Return(domain.NewBitmapInfo(8, 8, colorful.Color{}), nil)
	m.sampler.EXPECT().Sample(bad).Return(domain.BitmapInfo{}, zerr.Wrap(domain.ErrImageLoad, "corrupt"))
	// The writer must not be called: no partial output.

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/UIPack"})
	require.ErrorIs(t, err, domain.ErrImageLoad)
}

func TestApp_Run_ImageErrorKeepGoing(t *testing.T) {
	a, m := newTestApp(t)
	good := "/pkg/UIPack/Blue/Default/button_round_a.png"
	bad := "/pkg/UIPack/Blue/Default/button_round_b.png"

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).Times(1)
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(gomock.Any()).Return([]string{bad, good}, nil)
	m.sampler.EXPECT().Sample(bad).Return(domain.BitmapInfo{}, zerr.Wrap(domain.ErrImageLoad, "corrupt"))
	m.sampler.EXPECT().Sample(good).Return(domain.NewBitmapInfo(8, 8, colorful.Color{}), nil)

	var written []domain.Output
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, outs ...domain.Output) error {
			written = outs
			return nil
		})

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/UIPack", KeepGoing: true})
	require.NoError(t, err)

	uss := outputNamed(written, domain.DefaultStylesheetFile)
	assert.Contains(t, uss, ".blue.button_round_a {")
	assert.NotContains(t, uss, ".blue.button_round_b")
}

func TestApp_Run_WriteError(t *testing.T) {
	a, m := newTestApp(t)

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(gomock.Any()).Return(nil, nil)
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := a.Run(context.Background(), app.RunOptions{Path: "/pkg/UIPack"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write outputs")
}

func TestApp_Run_Interrupted(t *testing.T) {
	a, m := newTestApp(t)

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return("/pkg", nil)
	m.loader.EXPECT().Load("/pkg", "").Return(domain.DefaultStyleConfig(), nil)
	m.scanner.EXPECT().Scan(gomock.Any()).Return([]string{"/pkg/UIPack/Blue/Default/button_round_a.png"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx, app.RunOptions{Path: "/pkg/UIPack"})
	require.ErrorIs(t, err, context.Canceled)
}
