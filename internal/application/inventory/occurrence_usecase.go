package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/domain"
	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

// OcorrenciaUseCase registra divergências de contagem reportadas pelo coletor.
type OcorrenciaUseCase struct {
	ocorrenciaRepo  repository.OcorrenciaRepository
	localizacaoRepo repository.LocalizacaoRepository
	produtoRepo     repository.ProdutoRepository
}

// NewOcorrenciaUseCase constrói o caso de uso.
func NewOcorrenciaUseCase(
	ocorrenciaRepo repository.OcorrenciaRepository,
	localizacaoRepo repository.LocalizacaoRepository,
	produtoRepo repository.ProdutoRepository,
) *OcorrenciaUseCase {
	return &OcorrenciaUseCase{
		ocorrenciaRepo:  ocorrenciaRepo,
		localizacaoRepo: localizacaoRepo,
		produtoRepo:     produtoRepo,
	}
}

// Registrar valida e persiste a ocorrência. A quantidade esperada deve ser
// positiva; contagem pode ser zero (falta total).
func (uc *OcorrenciaUseCase) Registrar(operadorID string, in dto.RegistrarOcorrenciaRequest) (*entity.Ocorrencia, error) {
	if !in.QtdeEsperada.GreaterThan(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	if in.QtdeContada.LessThan(decimal.Zero) || operadorID == "" {
		return nil, domain.ErrValidation
	}
	loc, err := uc.localizacaoRepo.GetByID(in.LocalizacaoID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	oc := &entity.Ocorrencia{
		ID:            uuid.New().String(),
		LocalizacaoID: in.LocalizacaoID,
		ProdutoID:     in.ProdutoID,
		QtdeEsperada:  in.QtdeEsperada,
		QtdeContada:   in.QtdeContada,
		Observacao:    in.Observacao,
		OperadorID:    operadorID,
		CreatedAt:     time.Now(),
	}
	if err := uc.ocorrenciaRepo.Create(oc); err != nil {
		return nil, err
	}
	return oc, nil
}
