package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/domain/invoice"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
)

type InvoiceService = interfaces.InvoiceService

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

// CreateInvoice stores the invoice even when its client does not exist;
// the mismatch is only logged
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv := req.ToInvoice()

	exists, err := s.clientExists(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.Logger.Warnw("creating invoice for unknown client",
			"client_id", inv.ClientID,
			"invoice_number", inv.InvoiceNumber,
		)
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice created", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber, "amount", inv.Amount)
	s.publishEvent(ctx, types.EventInvoiceCreated, inv.ID, inv)
	return s.withClientName(ctx, inv)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withClientName(ctx, inv)
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return &dto.InvoiceResponse{Invoice: inv, ClientName: lookupClientName(names, inv.ClientID)}
	}), nil
}

// UpdateInvoice keeps the previous client when the requested one does not
// exist; the rest of the request still applies
func (s *invoiceService) UpdateInvoice(ctx context.Context, id int, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Resolved before taking the invoice lock
	var newClientID *int
	if clientID, ok := req.ClientID.Get(); ok {
		exists, err := s.clientExists(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if exists {
			newClientID = lo.ToPtr(clientID)
		} else {
			s.Logger.Warnw("ignoring unknown client on invoice update",
				"invoice_id", id,
				"client_id", clientID,
			)
		}
	}

	inv, err := s.InvoiceRepo.Update(ctx, id, func(current *invoice.Invoice) error {
		req.Apply(current)
		if newClientID != nil {
			current.ClientID = *newClientID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventInvoiceUpdated, inv.ID, inv)
	return s.withClientName(ctx, inv)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int) error {
	if err := s.InvoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("invoice deleted", "invoice_id", id)
	s.publishEvent(ctx, types.EventInvoiceDeleted, id, map[string]int{"id": id})
	return nil
}

func (s *invoiceService) clientExists(ctx context.Context, clientID int) (bool, error) {
	_, err := s.ClientRepo.Get(ctx, clientID)
	if ierr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *invoiceService) withClientName(ctx context.Context, inv *invoice.Invoice) (*dto.InvoiceResponse, error) {
	names, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv, ClientName: lookupClientName(names, inv.ClientID)}, nil
}

// clientNames reads the client list as it is now; names are never cached
func (s *invoiceService) clientNames(ctx context.Context) (map[int]string, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(clients, func(c *client.Client) (int, string) {
		return c.ID, c.Name
	}), nil
}

func lookupClientName(names map[int]string, clientID int) string {
	if name, ok := names[clientID]; ok {
		return name
	}
	return types.UnknownClientName
}
