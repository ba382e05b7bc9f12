package logger

import "go.uber.org/zap"

// Log is the process-wide logger. Init replaces it once at startup; the
// no-op default keeps packages usable from tests without setup.
var Log = zap.NewNop()

func Init(appEnv string) error {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "prod" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Sync() {
	_ = Log.Sync()
}
