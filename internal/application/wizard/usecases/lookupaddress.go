package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	apperrors "github.com/LucasFelipeJesus/portal-chamados/internal/shared/errors"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/utils"
)

const (
	MsgInvalidCEP     = "CEP inválido. Informe os 8 dígitos."
	MsgCEPNotFound    = "CEP não encontrado."
	MsgCEPServiceDown = "Serviço de consulta de CEP indisponível no momento. Tente novamente."
)

type LookupAddressQuery struct {
	CEP string
}

type LookupAddressUseCase struct {
	addressClient lookup.AddressClient
	logger        logger.Interface
}

func NewLookupAddressUseCase(addressClient lookup.AddressClient, log logger.Interface) *LookupAddressUseCase {
	return &LookupAddressUseCase{addressClient: addressClient, logger: log}
}

// Execute resolves a CEP so the details step can show the street before the
// ticket is submitted.
func (uc *LookupAddressUseCase) Execute(ctx context.Context, query LookupAddressQuery) (*lookup.AddressInfo, error) {
	cep := utils.StripDigits(query.CEP)
	if !utils.IsValidCEP(cep) {
		return nil, apperrors.NewValidationError(MsgInvalidCEP)
	}

	info, err := uc.addressClient.FetchAddress(ctx, cep)
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrNotFound):
			return nil, apperrors.NewNotFoundError(MsgCEPNotFound)
		case errors.Is(err, lookup.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
			uc.logger.Warnw("address registry unavailable", "error", err)
			return nil, apperrors.NewTimeoutError(MsgCEPServiceDown)
		default:
			uc.logger.Errorw("address lookup failed", "error", err)
			return nil, fmt.Errorf("failed to query address registry: %w", err)
		}
	}
	return info, nil
}
