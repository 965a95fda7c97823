package databricks

import (
	"fmt"
	"path"
	"time"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/stringutil"
)

const batchIDSuffixLength = 5

// NewBatchID returns a identifier that namespaces a single staged upload, e.g. 20240102030405_k3j9a
// The suffix keeps two flushes that happen within the same second apart.
func NewBatchID(now time.Time) string {
	return fmt.Sprintf("%s_%s", now.UTC().Format(constants.BatchIDLayout), stringutil.Random(batchIDSuffixLength))
}

// StagedFile is the remote location of a staged batch for a stream.
type StagedFile struct {
	basePath string
	stream   string
	batchID  string
}

func NewStagedFile(basePath, stream, batchID string) StagedFile {
	return StagedFile{
		basePath: basePath,
		stream:   stream,
		batchID:  batchID,
	}
}

func (s StagedFile) BatchID() string {
	return s.batchID
}

// Path returns {basePath}/_airbyte_raw_<stream>/<batchID>/data.jsonl
func (s StagedFile) Path() string {
	return path.Join(s.basePath, constants.RawTablePrefix+s.stream, s.batchID, constants.StagedFileName)
}

// DBFSPath returns [Path] with the dbfs: scheme, which is how the file shows up in the workspace file browser.
func (s StagedFile) DBFSPath() string {
	if len(s.basePath) > 0 && s.basePath[0] == '/' {
		return "dbfs:" + s.Path()
	}

	return s.Path()
}
