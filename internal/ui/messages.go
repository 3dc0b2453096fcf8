package ui

import (
	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/usecase"
)

// candidatesLoadedMsg carries the result of the initial load.
type candidatesLoadedMsg struct {
	candidates []domain.Candidate
	err        error
}

// detailResolvedMsg carries the result of one detail lookup. detail is nil
// when the candidate should be skipped.
type detailResolvedMsg struct {
	req    usecase.DetailRequest
	detail *domain.Candidate
}
