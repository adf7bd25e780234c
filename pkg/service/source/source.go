package source

import (
	"context"
	"os"
	"path"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/interfaces"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/utils/safe"
	"google.golang.org/api/option"
)

// Sentinel errors of the dataset source
var (
	ErrUnsupportedScheme = goerr.New("unsupported dataset URI scheme")
	ErrUnsupportedFormat = goerr.New("unsupported dataset format")
	ErrInvalidGCSURI     = goerr.New("invalid Cloud Storage URI")
	ErrSheetNotFound     = goerr.New("sheet not found")
	ErrEmptySheet        = goerr.New("sheet has no header row")
)

const (
	schemeFile = "file://"
	schemeGCS  = "gs://"
)

// Service fetches a dataset from a local path, a file:// URI or a gs:// object and parses
// it into a table.
type Service struct {
	sheet      string
	gcsOptions []option.ClientOption

	gcsMu  sync.Mutex
	gcs    *storage.Client
	ownGCS bool
}

var _ interfaces.TableSource = &Service{}

type Option func(*Service)

// WithSheet selects the spreadsheet tab by name instead of the first one
func WithSheet(name string) Option {
	return func(s *Service) {
		s.sheet = name
	}
}

// WithGCSCredentialsFile authenticates Cloud Storage reads with a service account key file
// instead of application default credentials.
func WithGCSCredentialsFile(path string) Option {
	return func(s *Service) {
		s.gcsOptions = append(s.gcsOptions, option.WithCredentialsFile(path))
	}
}

// WithGCSClient uses an existing Cloud Storage client. The caller keeps ownership of it.
func WithGCSClient(client *storage.Client) Option {
	return func(s *Service) {
		s.gcs = client
	}
}

func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the object at uri and parses it by its file extension
func (s *Service) Load(ctx context.Context, uri string) (*model.Table, error) {
	data, err := s.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}

	table, err := Parse(objectName(uri), data, ParseOptions{Sheet: s.sheet})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset", goerr.V("uri", uri))
	}
	return table, nil
}

// Fetch returns the raw bytes of the object at uri
func (s *Service) Fetch(ctx context.Context, uri string) ([]byte, error) {
	switch {
	case strings.HasPrefix(uri, schemeGCS):
		return s.fetchGCS(ctx, uri)

	case strings.HasPrefix(uri, schemeFile):
		return readFile(strings.TrimPrefix(uri, schemeFile))

	case strings.Contains(uri, "://"):
		return nil, goerr.Wrap(ErrUnsupportedScheme, "failed to fetch dataset", goerr.V("uri", uri))

	default:
		return readFile(uri)
	}
}

// Close releases the Cloud Storage client created by the service
func (s *Service) Close(ctx context.Context) {
	s.gcsMu.Lock()
	defer s.gcsMu.Unlock()

	if s.gcs != nil && s.ownGCS {
		safe.Close(ctx, s.gcs)
		s.gcs = nil
	}
}

func readFile(path string) ([]byte, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset file", goerr.V("path", path))
	}
	return data, nil
}

func objectName(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		uri = uri[i+3:]
	}
	return path.Base(uri)
}
