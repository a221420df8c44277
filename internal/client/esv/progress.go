package esv

import "io"

// progressReader reports every read of a response body to a ProgressFunc.
type progressReader struct {
	// reader is the wrapped response body.
	reader io.Reader
	// total is the expected body size, 0 when unknown.
	total int64
	// read is the number of bytes consumed so far.
	read int64
	// onProgress receives the running totals.
	onProgress ProgressFunc
}

func newProgressReader(reader io.Reader, contentLength int64, onProgress ProgressFunc) io.Reader {
	if onProgress == nil {
		return reader
	}

	return &progressReader{
		reader:     reader,
		total:      max(contentLength, 0),
		onProgress: onProgress,
	}
}

// Read implements io.Reader.
func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.onProgress(r.read, r.total, 0, 0)
	}

	return n, err
}

func noopProgress(int64, int64, int64, int64) {}
