package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cssmerge/internal/adapters/telemetry"
	"go.trai.ch/cssmerge/internal/app"
	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
	"go.trai.ch/cssmerge/internal/core/ports/mocks"
	"go.trai.ch/cssmerge/internal/engine/fetcher"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader    *mocks.MockManifestLoader
	transport *mocks.MockTransport
	fileSink  *mocks.MockOutputSink
	preview   *mocks.MockOutputSink
	logger    *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:    mocks.NewMockManifestLoader(ctrl),
		transport: mocks.NewMockTransport(ctrl),
		fileSink:  mocks.NewMockOutputSink(ctrl),
		preview:   mocks.NewMockOutputSink(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return h
}

func (h *harness) app(toggles domain.Toggles) *app.App {
	f := fetcher.New(h.transport, fetcher.NewCache(), h.logger, telemetry.NewNoOp(), fetcher.WithMaxAttempts(1))
	return app.New(h.loader, f, h.fileSink, h.preview, h.logger, telemetry.NewNoOp(), toggles).
		WithWorkingDir(filepath.FromSlash("/work"))
}

func urlBundle(path string, snippets ...domain.SnippetSpec) domain.BundleSpec {
	return domain.BundleSpec{Path: path, Snippets: snippets}
}

func TestApp_Run_OrdersByOrderField(t *testing.T) {
	h := newHarness(t)

	bundle := urlBundle("css_manifest.yml",
		domain.SnippetSpec{URL: "https://example.com/b.css", Order: 2},
		domain.SnippetSpec{URL: "https://example.com/a.css", Order: 1},
	)
	h.loader.EXPECT().Discover(nil).Return([]string{"css_manifest.yml"}, nil)
	h.loader.EXPECT().Load("css_manifest.yml").Return(bundle, nil)
	h.transport.EXPECT().GetText(gomock.Any(), "https://example.com/b.css").Return("B{}", nil)
	h.transport.EXPECT().GetText(gomock.Any(), "https://example.com/a.css").Return("A{}", nil)

	want := "\n/* Begin https://example.com/a.css */\nA{}\n/* End https://example.com/a.css */\n" +
		"\n/* Begin https://example.com/b.css */\nB{}\n/* End https://example.com/b.css */\n"
	h.fileSink.EXPECT().Write(gomock.Any(), domain.DefaultOutputFile, want).Return(nil)

	err := h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_DryRunUsesPreviewSink(t *testing.T) {
	h := newHarness(t)

	bundle := urlBundle("m.yml", domain.SnippetSpec{URL: "https://example.com/a.css"})
	bundle.Metadata.Output = "dist/out.css"
	h.loader.EXPECT().Discover([]string{"m.yml"}).Return([]string{"m.yml"}, nil)
	h.loader.EXPECT().Load("m.yml").Return(bundle, nil)
	h.transport.EXPECT().GetText(gomock.Any(), gomock.Any()).Return("a{}/* note */", nil)
	h.preview.EXPECT().
		Write(gomock.Any(), filepath.FromSlash("dist/out.css"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content string) error {
			assert.NotContains(t, content, "note")
			return nil
		})

	err := h.app(domain.Toggles{DryRun: true}).
		Run(context.Background(), []string{"m.yml"}, app.RunOptions{HideComments: true})
	require.NoError(t, err)
}

func TestApp_Run_FlagsEnableToggles(t *testing.T) {
	h := newHarness(t)

	bundle := urlBundle("m.yml", domain.SnippetSpec{URL: "https://example.com/a.css"})
	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"m.yml"}, nil)
	h.loader.EXPECT().Load("m.yml").Return(bundle, nil)
	h.transport.EXPECT().GetText(gomock.Any(), gomock.Any()).Return("a{}", nil)
	h.preview.EXPECT().Write(gomock.Any(), domain.DefaultOutputFile, gomock.Any()).Return(nil)

	err := h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{DryRun: true, Concurrency: 1})
	require.NoError(t, err)
}

func TestApp_Run_AbsoluteOutputRerootedUnderWorkingDir(t *testing.T) {
	h := newHarness(t)

	bundle := urlBundle("m.yml", domain.SnippetSpec{URL: "https://example.com/a.css"})
	bundle.Metadata.Output = filepath.FromSlash("/themes/out.css")
	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"m.yml"}, nil)
	h.loader.EXPECT().Load("m.yml").Return(bundle, nil)
	h.transport.EXPECT().GetText(gomock.Any(), gomock.Any()).Return("a{}", nil)
	h.fileSink.EXPECT().Write(gomock.Any(), filepath.FromSlash("/work/themes/out.css"), gomock.Any()).Return(nil)

	require.NoError(t, h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{}))
}

func TestApp_Run_InvalidManifestAbortsBeforeOutput(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"good.yml", "bad.yml"}, nil)
	h.loader.EXPECT().Load("good.yml").Return(urlBundle("good.yml", domain.SnippetSpec{URL: "https://x/a.css"}), nil)
	h.loader.EXPECT().Load("bad.yml").Return(domain.BundleSpec{}, domain.ErrSnippetsNotList)

	err := h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSnippetsNotList))
	assert.False(t, errors.Is(err, domain.ErrBundleFailed))
}

func TestApp_Run_DiscoveryError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Discover(gomock.Any()).Return(nil, domain.ErrNoManifests)

	err := h.app(domain.Toggles{}).Run(context.Background(), []string{"empty"}, app.RunOptions{})
	assert.True(t, errors.Is(err, domain.ErrNoManifests))
}

func TestApp_Run_WriteFailureContinuesWithOtherBundles(t *testing.T) {
	h := newHarness(t)

	first := urlBundle("first.yml", domain.SnippetSpec{URL: "https://example.com/shared.css"})
	first.Metadata.Output = "first.css"
	second := urlBundle("second.yml", domain.SnippetSpec{URL: "https://example.com/shared.css"})
	second.Metadata.Output = "second.css"

	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"first.yml", "second.yml"}, nil)
	h.loader.EXPECT().Load("first.yml").Return(first, nil)
	h.loader.EXPECT().Load("second.yml").Return(second, nil)
	// Shared across bundles through the fetch cache.
	h.transport.EXPECT().GetText(gomock.Any(), "https://example.com/shared.css").Return("s{}", nil).Times(1)

	gomock.InOrder(
		h.fileSink.EXPECT().Write(gomock.Any(), "first.css", gomock.Any()).Return(domain.ErrOutputWriteFailed),
		h.fileSink.EXPECT().Write(gomock.Any(), "second.css", gomock.Any()).Return(nil),
	)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	err := h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBundleFailed))
	assert.True(t, errors.Is(err, domain.ErrOutputWriteFailed))
}

func TestApp_Run_FailedSourceIsSkipped(t *testing.T) {
	h := newHarness(t)

	bundle := urlBundle("m.yml",
		domain.SnippetSpec{URL: "https://example.com/missing.css", Order: 1},
		domain.SnippetSpec{URL: "https://example.com/ok.css", Order: 2},
	)
	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"m.yml"}, nil)
	h.loader.EXPECT().Load("m.yml").Return(bundle, nil)
	h.transport.EXPECT().GetText(gomock.Any(), "https://example.com/missing.css").Return("", domain.ErrUnexpectedStatus)
	h.transport.EXPECT().GetText(gomock.Any(), "https://example.com/ok.css").Return("ok{}", nil)
	h.fileSink.EXPECT().
		Write(gomock.Any(), domain.DefaultOutputFile, "\n/* Begin https://example.com/ok.css */\nok{}\n/* End https://example.com/ok.css */\n").
		Return(nil)

	require.NoError(t, h.app(domain.Toggles{}).Run(context.Background(), nil, app.RunOptions{}))
}

func TestApp_Run_RecordsBundleVertex(t *testing.T) {
	h := newHarness(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	h.loader.EXPECT().Discover(gomock.Any()).Return([]string{"m.yml"}, nil)
	h.loader.EXPECT().Load("m.yml").Return(urlBundle("m.yml"), nil)
	tel.EXPECT().Record(gomock.Any(), "bundle m.yml").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	h.fileSink.EXPECT().Write(gomock.Any(), domain.DefaultOutputFile, "").Return(domain.ErrOutputWriteFailed)
	h.logger.EXPECT().Error(gomock.Any())
	vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	f := fetcher.New(h.transport, fetcher.NewCache(), h.logger, telemetry.NewNoOp())
	a := app.New(h.loader, f, h.fileSink, h.preview, h.logger, tel, domain.Toggles{})

	err := a.Run(context.Background(), nil, app.RunOptions{})
	assert.True(t, errors.Is(err, domain.ErrOutputWriteFailed))
}

func TestApp_Close(t *testing.T) {
	h := newHarness(t)
	assert.NoError(t, h.app(domain.Toggles{}).Close())
}

func TestApp_Close_PropagatesTelemetryError(t *testing.T) {
	h := newHarness(t)
	tel := mocks.NewMockTelemetry(gomock.NewController(t))
	tel.EXPECT().Close().Return(errors.New("flush failed"))

	f := fetcher.New(h.transport, fetcher.NewCache(), h.logger, telemetry.NewNoOp())
	a := app.New(h.loader, f, h.fileSink, h.preview, h.logger, tel, domain.Toggles{})

	assert.EqualError(t, a.Close(), "flush failed")
}
