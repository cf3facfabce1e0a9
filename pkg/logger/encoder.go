package logger

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

type prefixEncoder struct {
	// embed a zapcore encoder
	// this makes prefixEncoder implement the interface without extra work
	zapcore.Encoder

	// zap buffer pool
	pool buffer.Pool

	prefix string
}

func (e *prefixEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	// calling the embedded encoder's EncodeEntry to keep the original encoding format
	consolebuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer consolebuf.Free()

	buf := e.pool.Get()
	buf.AppendString(e.prefix)
	buf.AppendString(" ")
	if _, err = buf.Write(consolebuf.Bytes()); err != nil {
		buf.Free()
		return nil, err
	}
	return buf, nil
}

func (e *prefixEncoder) Clone() zapcore.Encoder {
	return &prefixEncoder{Encoder: e.Encoder.Clone(), pool: e.pool, prefix: e.prefix}
}
