package outputlog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/slcore-bridge/src/slbridge/internal/fs/fsmock"
	"github.com/uber/slcore-bridge/src/slbridge/internal/serverinfofile/serverinfofilemock"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := fxtest.NewLifecycle(t)
		serverInfoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)
		fsMock := fsmock.NewMockBridgeFS(ctrl)

		file, err := os.CreateTemp(t.TempDir(), "")
		require.NoError(t, err)

		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(file, nil)
		serverInfoFileMock.EXPECT().UpdateField(fmt.Sprintf(_fmtOutputKey, "sample-key"), file.Name()).Return(nil)

		out, err := New(Params{FS: fsMock, Lifecycle: lifecycle, ServerInfoFile: serverInfoFileMock}, "sample-key")
		require.NoError(t, err)
		out.Printf("sample %s", "message")

		fsMock.EXPECT().Remove(file.Name()).Return(nil)
		lifecycle.RequireStart().RequireStop()

		contents, err := os.ReadFile(file.Name())
		require.NoError(t, err)
		assert.Contains(t, string(contents), "sample message")
	})

	t.Run("mkdir fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockBridgeFS(ctrl)
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(errors.New("sample"))

		_, err := New(Params{FS: fsMock, Lifecycle: fxtest.NewLifecycle(t)}, "sample-key")
		assert.Error(t, err)
	})

	t.Run("tempfile fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockBridgeFS(ctrl)
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(nil, errors.New("sample"))

		_, err := New(Params{FS: fsMock, Lifecycle: fxtest.NewLifecycle(t)}, "sample-key")
		assert.Error(t, err)
	})

	t.Run("server info update fail removes the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serverInfoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)
		fsMock := fsmock.NewMockBridgeFS(ctrl)

		file, err := os.CreateTemp(t.TempDir(), "")
		require.NoError(t, err)

		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		fsMock.EXPECT().TempFile(gomock.Any(), gomock.Any()).Return(file, nil)
		serverInfoFileMock.EXPECT().UpdateField(gomock.Any(), gomock.Any()).Return(errors.New("sample"))
		fsMock.EXPECT().Remove(file.Name()).Return(nil)

		_, err = New(Params{FS: fsMock, Lifecycle: fxtest.NewLifecycle(t), ServerInfoFile: serverInfoFileMock}, "sample-key")
		assert.ErrorContains(t, err, "sample")
	})
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.InfoLevel,
	)
	out := &Output{logger: zap.New(core).Sugar()}

	out.Printf("%s finished", "main.cpp")
	out.Printf("%s cancelled", "util.cpp")
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 2)
	assert.Contains(t, buf.String(), "main.cpp finished")

	var discard *Output
	assert.NotPanics(t, func() { discard.Printf("ignored") })
}
