package sales

import (
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ToUserSummary perfil público del usuario (sin hash ni estado).
func ToUserSummary(u *entity.User) *dto.UserSummary {
	if u == nil {
		return nil
	}
	return &dto.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// ToSaleResponse mapea la venta leyendo siempre las líneas guardadas, nunca el catálogo vigente.
func ToSaleResponse(s *entity.Sale, user *entity.User) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		User:          ToUserSummary(user),
		Customer:      s.CustomerName,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
