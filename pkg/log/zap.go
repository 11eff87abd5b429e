package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	)

	logger = zap.New(core,
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// Info logs a message at InfoLevel with optional structured fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs a message with loosely-typed key-value context.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	Logger.Infof(message, args...)
}

// Debug logs a message at DebugLevel with optional structured fields.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Debugf formats the message according to the format specifier and logs it at DebugLevel.
func Debugf(message string, args ...interface{}) {
	Logger.Debugf(message, args...)
}

// Warn logs a message at WarnLevel with optional structured fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Warnw logs a message with loosely-typed key-value context at WarnLevel.
func Warnw(message string, keysAndValues ...interface{}) {
	Logger.Warnw(message, keysAndValues...)
}

// Warnf formats the message according to the format specifier and logs it at WarnLevel.
func Warnf(message string, args ...interface{}) {
	Logger.Warnf(message, args...)
}

// Error logs a message at ErrorLevel with optional structured fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorw logs a message with loosely-typed key-value context at ErrorLevel.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel and exits.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Fatalf formats the message, logs it at FatalLevel and exits.
func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
