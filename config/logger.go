package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Debug mode logs everything to stdout
// in color; otherwise info and above also go to cfg.LogFile.
func NewLogger(cfg *Config) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Debug {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stdout), zapcore.DebugLevel)
		return zap.New(core, zap.AddCaller()).Sugar(), nil
	}

	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.LogFile != "" {
		file, _, err := zap.Open(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, file)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.NewMultiWriteSyncer(sinks...), zapcore.InfoLevel)
	return zap.New(core, zap.AddCaller()).Sugar(), nil
}
