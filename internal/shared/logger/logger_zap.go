// Package logger содержит общий логгер сервера и CLI.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования HTTP-запросов.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options описывает куда и как писать логи.
//
// Нулевые значения заменяются дефолтами в withDefaults.
type Options struct {
	Dir        string // каталог логов, по умолчанию runtime/logs
	File       string // имя файла, по умолчанию http.log
	Level      string // debug|info|warn|error
	Format     string // json|console
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = filepath.Join("runtime", "logs")
	}
	if o.File == "" {
		o.File = "http.log"
	}
	if o.Level == "" {
		o.Level = "info"
	}
	if o.Format == "" {
		o.Format = "console"
	}
	if o.MaxSizeMB == 0 {
		o.MaxSizeMB = 100 // MB ≈ ~300 000 строк
	}
	if o.MaxBackups == 0 {
		o.MaxBackups = 10
	}
	if o.MaxAgeDays == 0 {
		o.MaxAgeDays = 30
	}
	return o
}

// Path возвращает полный путь к файлу логов с учётом дефолтов.
func (o Options) Path() string {
	o = o.withDefaults()
	return filepath.Join(o.Dir, o.File)
}

// NewHTTPLogger создаёт файловый zap-логгер для HTTP-логов.
//
// По умолчанию логи пишутся в runtime/logs/http.log.
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge).
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func NewHTTPLogger(opts Options) *HTTPLogger {
	opts = opts.withDefaults()
	_ = os.MkdirAll(opts.Dir, 0755)

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.File),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(opts.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, parseLevel(opts.Level))

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// NewNop возвращает логгер, который ничего не пишет. Удобен в тестах.
func NewNop() *HTTPLogger {
	return &HTTPLogger{Logger: zap.NewNop()}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri — параметры запроса,
// requestID — идентификатор запроса из заголовка X-Request-Id,
// status — HTTP-статус ответа,
// responseSize — размер ответа в байтах,
// duration — длительность обработки запроса в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri, requestID string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// parseLevel переводит строку из конфига в уровень zap, неизвестное значение = info.
func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
