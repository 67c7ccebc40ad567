package analytics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joshuaswanson/inventory-tracker/internal/domain/dedup"
	"github.com/joshuaswanson/inventory-tracker/internal/domain/ledger"
	"github.com/joshuaswanson/inventory-tracker/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NewDetectorFromConfig builds a detector with the configured thresholds,
// falling back to the dedup defaults for values that do not parse
func NewDetectorFromConfig(cfg config.DedupConfig) *dedup.Detector {
	opts := []dedup.DetectorOption{dedup.WithMaxNameDistance(cfg.MaxNameDistance)}
	if epsilon, err := decimal.NewFromString(cfg.PriceEpsilon); err == nil && epsilon.IsPositive() {
		opts = append(opts, dedup.WithPriceEpsilon(epsilon))
	}
	return dedup.NewDetector(opts...)
}

// DuplicateScanService schedules duplicate-detection passes off the
// caller's hot path. Scans are triggered by collection-size changes, not
// content changes: an in-place edit that keeps sizes unchanged leaves the
// last report stale until the next size change. Scans are not queued or
// cancelled; when triggers overlap, a generation counter makes publishing
// last-write-wins so a slow stale scan never overwrites a newer report.
type DuplicateScanService struct {
	source   SnapshotSource
	detector *dedup.Detector
	logger   *zap.Logger

	generation atomic.Uint64

	mu           sync.Mutex
	report       *dedup.Report
	publishedGen uint64
	scheduled    ledger.CollectionCounts
	everScanned  bool
}

// ScanOption is a functional option for configuring the scan service
type ScanOption func(*DuplicateScanService)

// WithScanLogger sets the logger for scan lifecycle events
func WithScanLogger(logger *zap.Logger) ScanOption {
	return func(s *DuplicateScanService) {
		s.logger = logger
	}
}

// WithDetector sets the detector, e.g. one built with configured
// thresholds. Defaults to dedup.NewDetector().
func WithDetector(detector *dedup.Detector) ScanOption {
	return func(s *DuplicateScanService) {
		s.detector = detector
	}
}

// NewDuplicateScanService creates a scan service over the given source
func NewDuplicateScanService(source SnapshotSource, opts ...ScanOption) *DuplicateScanService {
	s := &DuplicateScanService{
		source:   source,
		detector: dedup.NewDetector(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CollectionsChanged is the trigger the surrounding application calls after
// mutating any of the four collections. A scan is started on a background
// goroutine only when a collection size differs from the last scheduled
// scan; returns true when a scan was started.
func (s *DuplicateScanService) CollectionsChanged() bool {
	snapshot := s.source.Snapshot()
	counts := snapshot.Counts()

	s.mu.Lock()
	if s.everScanned && counts == s.scheduled {
		s.mu.Unlock()
		return false
	}
	s.scheduled = counts
	s.everScanned = true
	s.mu.Unlock()

	gen := s.generation.Add(1)
	go s.scan(gen, snapshot)
	return true
}

// ScanNow runs a detection pass synchronously and publishes the result,
// subject to the same last-write-wins rule as background scans
func (s *DuplicateScanService) ScanNow() *dedup.Report {
	snapshot := s.source.Snapshot()

	s.mu.Lock()
	s.scheduled = snapshot.Counts()
	s.everScanned = true
	s.mu.Unlock()

	gen := s.generation.Add(1)
	return s.scan(gen, snapshot)
}

// Report returns the latest published report, or nil before the first scan
// completes
func (s *DuplicateScanService) Report() *dedup.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

func (s *DuplicateScanService) scan(gen uint64, snapshot *ledger.Snapshot) *dedup.Report {
	start := time.Now()
	report := s.detector.Detect(snapshot)

	s.mu.Lock()
	published := gen > s.publishedGen
	if published {
		s.report = report
		s.publishedGen = gen
	}
	s.mu.Unlock()

	s.logger.Info("duplicate scan complete",
		zap.Uint64("generation", gen),
		zap.Bool("published", published),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("item_groups", len(report.ItemGroups)),
		zap.Int("vendor_groups", len(report.VendorGroups)),
		zap.Int("purchase_groups", len(report.PurchaseGroups)),
		zap.Int("usage_groups", len(report.UsageGroups)),
	)
	return report
}
