package strategies

import (
	"context"
	"fmt"
	"io"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ Strategy = (*ROPStrategy)(nil)

// ROPStrategy fetches criminal record-of-proceedings documents.
type ROPStrategy struct {
	client driven.CriminalFileClient
}

// NewROPStrategy creates a record-of-proceedings strategy.
func NewROPStrategy(client driven.CriminalFileClient) *ROPStrategy {
	return &ROPStrategy{client: client}
}

func (s *ROPStrategy) Type() domain.DocumentType {
	return domain.DocumentTypeROP
}

// Fetch enum-parses the court level and class codes before calling upstream;
// unparseable codes are an invalid-argument failure, not an upstream error.
func (s *ROPStrategy) Fetch(ctx context.Context, auth domain.AuthContext, data domain.DocumentData) (io.ReadSeeker, error) {
	level, err := domain.ParseCourtLevel(data.CourtLevelCd)
	if err != nil {
		return nil, err
	}
	class, err := domain.ParseCourtClass(data.CourtClassCd)
	if err != nil {
		return nil, err
	}

	body, err := s.client.RecordOfProceeding(ctx, auth, data.PartID, data.ProfSeqNo, level, class)
	if err != nil {
		return nil, fmt.Errorf("record of proceedings for part %s: %w", data.PartID, err)
	}

	return buffer(body)
}
