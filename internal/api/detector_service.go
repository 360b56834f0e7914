package api

import (
	"context"
	"os"
	"time"
	"unicode/utf8"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/recorder"
	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/status"
	"github.com/matheus3301/chardetect/internal/store"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

// MaxTextRunes bounds the text accepted by a single call.
const MaxTextRunes = 100_000

// DetectorService implements the Detector gRPC service.
type DetectorService struct {
	chardetv1.UnimplementedDetectorServer

	detector  *detect.Detector
	recorder  *recorder.Recorder
	machine   *status.Machine
	db        *store.DB
	bus       *bus.Bus
	startedAt time.Time
}

// NewDetectorService creates a new detector service. rec, db and b may be
// nil, in which case saving and history counts are unavailable.
func NewDetectorService(d *detect.Detector, rec *recorder.Recorder, machine *status.Machine, db *store.DB, b *bus.Bus) *DetectorService {
	return &DetectorService{
		detector:  d,
		recorder:  rec,
		machine:   machine,
		db:        db,
		bus:       b,
		startedAt: time.Now(),
	}
}

func validateText(text string) error {
	if !utf8.ValidString(text) {
		return grpcstatus.Errorf(codes.InvalidArgument, "text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextRunes {
		return grpcstatus.Errorf(codes.InvalidArgument, "text has %d characters, limit is %d", n, MaxTextRunes)
	}
	return nil
}

func (s *DetectorService) Classify(_ context.Context, req *chardetv1.ClassifyRequest) (*chardetv1.ClassifyResponse, error) {
	if err := validateText(req.Text); err != nil {
		return nil, err
	}
	a := s.detector.Analyze(req.Text)

	resp := &chardetv1.ClassifyResponse{ShareToken: share.Encode(req.Text)}
	analysisToWire(a, resp)

	if req.Save {
		if s.recorder == nil {
			return nil, grpcstatus.Errorf(codes.Unavailable, "history not available")
		}
		sample, _, err := s.recorder.Save(req.SampleId, a)
		if err != nil {
			return nil, grpcstatus.Errorf(codes.Internal, "save sample: %v", err)
		}
		resp.SampleId = sample.ID
	}
	return resp, nil
}

func (s *DetectorService) ListBlocks(_ context.Context, req *chardetv1.ListBlocksRequest) (*chardetv1.ListBlocksResponse, error) {
	found := s.detector.Table().Filter(req.Query)
	resp := &chardetv1.ListBlocksResponse{Blocks: make([]*chardetv1.Block, 0, len(found))}
	for _, b := range found {
		resp.Blocks = append(resp.Blocks, blockToWire(b))
	}
	return resp, nil
}

func (s *DetectorService) GetStatus(_ context.Context, _ *chardetv1.GetStatusRequest) (*chardetv1.GetStatusResponse, error) {
	resp := &chardetv1.GetStatusResponse{
		Status:      string(status.Booting),
		UptimeMs:    time.Since(s.startedAt).Milliseconds(),
		Pid:         int32(os.Getpid()),
		BlockCount:  int32(s.detector.Table().Len()),
		Placeholder: s.detector.Mapper().Placeholder(),
	}
	if s.machine != nil {
		state, _, reason := s.machine.Snapshot()
		resp.Status = string(state)
		resp.StatusMessage = reason
	}
	if s.db != nil {
		if n, err := s.db.SampleCount(); err == nil {
			resp.SampleCount = int32(n)
		}
	}
	if s.bus != nil {
		resp.Watchers = int32(s.bus.Subscribers())
	}
	return resp, nil
}
