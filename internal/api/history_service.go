package api

import (
	"context"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/recorder"
	"github.com/matheus3301/chardetect/internal/store"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// HistoryService implements the History gRPC service.
type HistoryService struct {
	chardetv1.UnimplementedHistoryServer

	detector *detect.Detector
	recorder *recorder.Recorder
	db       *store.DB
	bus      *bus.Bus
}

// NewHistoryService creates a new history service backed by the store.
func NewHistoryService(d *detect.Detector, rec *recorder.Recorder, db *store.DB, b *bus.Bus) *HistoryService {
	return &HistoryService{detector: d, recorder: rec, db: db, bus: b}
}

func clampLimit(limit int32) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	}
	return int(limit)
}

func (s *HistoryService) SaveSample(_ context.Context, req *chardetv1.SaveSampleRequest) (*chardetv1.SaveSampleResponse, error) {
	if err := validateText(req.Text); err != nil {
		return nil, err
	}
	sample, created, err := s.recorder.Save(req.ClientSampleId, s.detector.Analyze(req.Text))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "save sample: %v", err)
	}
	return &chardetv1.SaveSampleResponse{Sample: sampleToWire(sample), Created: created}, nil
}

func (s *HistoryService) ListSamples(_ context.Context, req *chardetv1.ListSamplesRequest) (*chardetv1.ListSamplesResponse, error) {
	limit := clampLimit(req.Limit)
	offset := int(max(req.Offset, 0))

	samples, err := s.db.ListSamples(limit, offset)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list samples: %v", err)
	}
	total, err := s.db.SampleCount()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "count samples: %v", err)
	}

	resp := &chardetv1.ListSamplesResponse{
		Samples: make([]*chardetv1.Sample, 0, len(samples)),
		Total:   int32(total),
		HasMore: offset+len(samples) < total,
	}
	for i := range samples {
		resp.Samples = append(resp.Samples, sampleToWire(&samples[i]))
	}
	return resp, nil
}

func (s *HistoryService) GetSample(_ context.Context, req *chardetv1.GetSampleRequest) (*chardetv1.GetSampleResponse, error) {
	if req.Id == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "id is required")
	}
	sample, err := s.db.GetSample(req.Id)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get sample: %v", err)
	}
	if sample == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "sample %s not found", req.Id)
	}
	return &chardetv1.GetSampleResponse{Sample: sampleToWire(sample)}, nil
}

func (s *HistoryService) SearchSamples(_ context.Context, req *chardetv1.SearchSamplesRequest) (*chardetv1.SearchSamplesResponse, error) {
	if req.Query == "" && req.Block == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "query or block is required")
	}
	if req.Block != "" {
		if _, ok := s.detector.Table().Lookup(req.Block); !ok {
			return nil, grpcstatus.Errorf(codes.InvalidArgument, "unknown block %q", req.Block)
		}
	}

	results, err := s.db.SearchSamples(req.Query, req.Block, clampLimit(req.Limit))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "search samples: %v", err)
	}

	resp := &chardetv1.SearchSamplesResponse{Results: make([]*chardetv1.SearchResult, 0, len(results))}
	for i := range results {
		resp.Results = append(resp.Results, &chardetv1.SearchResult{
			Sample:  sampleToWire(&results[i].Sample),
			Snippet: results[i].Snippet,
		})
	}
	return resp, nil
}

func (s *HistoryService) DeleteSample(_ context.Context, req *chardetv1.DeleteSampleRequest) (*chardetv1.DeleteSampleResponse, error) {
	if req.Id == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "id is required")
	}
	deleted, err := s.recorder.Delete(req.Id)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "delete sample: %v", err)
	}
	if !deleted {
		return nil, grpcstatus.Errorf(codes.NotFound, "sample %s not found", req.Id)
	}
	return &chardetv1.DeleteSampleResponse{Deleted: true}, nil
}

func (s *HistoryService) BlockStats(_ context.Context, req *chardetv1.BlockStatsRequest) (*chardetv1.BlockStatsResponse, error) {
	stats, err := s.db.BlockStats(clampLimit(req.Limit))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "block stats: %v", err)
	}
	resp := &chardetv1.BlockStatsResponse{Stats: make([]*chardetv1.BlockStat, 0, len(stats))}
	for _, st := range stats {
		color := blocks.Unknown.Color
		if b, ok := s.detector.Table().Lookup(st.BlockName); ok {
			color = b.Color
		}
		resp.Stats = append(resp.Stats, &chardetv1.BlockStat{
			BlockName: st.BlockName,
			Color:     color,
			Samples:   int32(st.Samples),
			Chars:     int32(st.Chars),
		})
	}
	return resp, nil
}

func (s *HistoryService) WatchSamples(_ *chardetv1.WatchSamplesRequest, stream chardetv1.History_WatchSamplesServer) error {
	ch, unsub := s.bus.Subscribe("sample.", 256)
	defer unsub()

	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return grpcstatus.Errorf(codes.Unavailable, "daemon shutting down")
			}
			msg := &chardetv1.SampleEvent{
				EventId:   evt.ID,
				Kind:      evt.Kind,
				Timestamp: evt.Timestamp.UnixMilli(),
			}
			if ref, ok := evt.Payload.(bus.SampleRef); ok {
				msg.SampleId = ref.ID
				msg.CharCount = int32(ref.CharCount)
				msg.BlockCount = int32(ref.BlockCount)
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}
