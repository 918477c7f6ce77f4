package logger

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// iso8601Layout matches zapcore.ISO8601TimeEncoder.
const iso8601Layout = "2006-01-02T15:04:05.000Z0700"

//nolint:gochecknoglobals // Shared buffer pool, same as zap's own encoders.
var bufferPool = buffer.NewPool()

// patternEncoder renders the entry header from a pattern and delegates
// structured fields to a console encoder that only writes context.
//
// Supported tokens:
//
//	%l  level, lowercase ("info")
//	%L  level, uppercase ("INFO")
//	%n  logger name
//	%v  message
//	%T  ISO8601 timestamp
//	%%  literal percent
//
// Anything else is copied as is.
type patternEncoder struct {
	zapcore.Encoder

	pattern string
}

func newPatternEncoder(pattern string) *patternEncoder {
	// Every key is empty so the console encoder emits fields and nothing else.
	//nolint:exhaustruct // Only field encoding is delegated.
	fields := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		SkipLineEnding: true,
	})

	return &patternEncoder{
		Encoder: fields,
		pattern: pattern,
	}
}

// Clone copies the encoder together with any fields added through With.
//
//nolint:ireturn // zapcore.Encoder contract.
func (e *patternEncoder) Clone() zapcore.Encoder {
	return &patternEncoder{
		Encoder: e.Encoder.Clone(),
		pattern: e.pattern,
	}
}

// EncodeEntry writes one pattern-formatted line followed by the structured fields.
//
//nolint:gocritic // zapcore.Encoder passes the entry by value.
func (e *patternEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()
	e.render(line, ent)

	//nolint:exhaustruct // Header parts are already rendered.
	ctxFields, err := e.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		line.Free()
		return nil, err
	}

	if ctxFields.Len() > 0 {
		line.AppendByte(' ')
		_, _ = line.Write(ctxFields.Bytes())
	}

	ctxFields.Free()

	if ent.Stack != "" {
		line.AppendByte('\n')
		line.AppendString(ent.Stack)
	}

	line.AppendString(zapcore.DefaultLineEnding)

	return line, nil
}

//nolint:gocritic // Entry is small and copied by zap anyway.
func (e *patternEncoder) render(line *buffer.Buffer, ent zapcore.Entry) {
	p := e.pattern

	for i := 0; i < len(p); i++ {
		if p[i] != '%' || i+1 == len(p) {
			line.AppendByte(p[i])
			continue
		}

		i++

		switch p[i] {
		case 'l':
			line.AppendString(ent.Level.String())
		case 'L':
			line.AppendString(ent.Level.CapitalString())
		case 'n':
			line.AppendString(ent.LoggerName)
		case 'v':
			line.AppendString(ent.Message)
		case 'T':
			line.AppendTime(ent.Time, iso8601Layout)
		case '%':
			line.AppendByte('%')
		default:
			line.AppendByte('%')
			line.AppendByte(p[i])
		}
	}
}
