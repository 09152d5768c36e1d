package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// OcorrenciaRepository define o porto de persistência para Ocorrencia.
type OcorrenciaRepository interface {
	Create(oc *entity.Ocorrencia) error
}
