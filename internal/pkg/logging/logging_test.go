package logging_test

import (
	"context"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/poketeam-api/internal/pkg/logging"
)

type LoggingTestSuite struct {
	suite.Suite
}

func TestLoggingTestSuite(t *testing.T) {
	suite.Run(t, new(LoggingTestSuite))
}

func (s *LoggingTestSuite) TestNew() {
	logger, err := logging.New("debug", false)
	s.Require().NoError(err)
	s.True(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.New("warn", true)
	s.Require().NoError(err)
	s.False(logger.Core().Enabled(zapcore.InfoLevel))

	_, err = logging.New("loud", false)
	s.Error(err)
}

func (s *LoggingTestSuite) TestInterceptorLogger() {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := logging.InterceptorLogger(zap.New(core))

	adapter.Log(context.Background(), grpc_logging.LevelWarn, "finished call",
		"grpc.method", "GetCoverage",
		"grpc.code", 3,
		"grpc.ok", false,
		"grpc.time_ms", 1.5,
	)

	s.Require().Equal(1, logs.Len())
	entry := logs.All()[0]
	s.Equal(zapcore.WarnLevel, entry.Level)
	s.Equal("finished call", entry.Message)

	fields := entry.ContextMap()
	s.Equal("GetCoverage", fields["grpc.method"])
	s.Equal(int64(3), fields["grpc.code"])
	s.Equal(false, fields["grpc.ok"])
	s.Equal(1.5, fields["grpc.time_ms"])
}

func (s *LoggingTestSuite) TestOrNop() {
	s.NotNil(logging.OrNop(nil))
	l := zap.NewExample()
	s.Same(l, logging.OrNop(l))
}
