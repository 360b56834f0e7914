package api

import (
	"github.com/matheus3301/chardetect/internal/blocks"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/store"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

func blockToWire(b blocks.Block) *chardetv1.Block {
	return &chardetv1.Block{
		Name:      b.Name,
		Start:     b.Start,
		End:       b.End,
		Range:     b.Range(),
		Color:     b.Color,
		Reference: b.Reference,
	}
}

func characterToWire(c detect.Character) *chardetv1.Character {
	return &chardetv1.Character{
		Index:       int32(c.Index),
		Offset:      int32(c.Offset),
		Rune:        c.Rune,
		CodePoint:   c.CodePoint(),
		Name:        c.Name(),
		Block:       c.Block.Name,
		Visual:      c.Visual,
		Kind:        c.Kind.String(),
		Substituted: c.Substituted(),
	}
}

func analysisToWire(a *detect.Analysis, resp *chardetv1.ClassifyResponse) {
	resp.Characters = make([]*chardetv1.Character, 0, a.Len())
	for _, c := range a.Characters {
		resp.Characters = append(resp.Characters, characterToWire(c))
	}
	resp.Blocks = make([]*chardetv1.BlockSummary, 0, len(a.Blocks))
	for _, s := range a.Blocks {
		resp.Blocks = append(resp.Blocks, &chardetv1.BlockSummary{
			Block: blockToWire(s.Block),
			Count: int32(s.Count),
			First: int32(s.First),
		})
	}
	resp.Substitutions = int32(a.Substitutions())
}

func sampleToWire(s *store.Sample) *chardetv1.Sample {
	out := &chardetv1.Sample{
		Id:               s.ID,
		Body:             s.Body,
		ShareToken:       s.ShareToken,
		CharCount:        int32(s.CharCount),
		BlockCount:       int32(s.BlockCount),
		SubstitutedCount: int32(s.SubstitutedCount),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	for _, b := range s.Blocks {
		out.Blocks = append(out.Blocks, &chardetv1.SampleBlock{
			BlockName:  b.BlockName,
			CharCount:  int32(b.CharCount),
			FirstIndex: int32(b.FirstIndex),
		})
	}
	return out
}
