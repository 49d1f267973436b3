package postgres

import (
	"context"

	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultOrderListLimit = 20

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order row, then its items and tracking events. Inside TransactionManager.Execute
// GORM turns the nested transaction into a savepoint.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(orderM).Error; err != nil {
			return err
		}

		items := fromOrderItemsDomain(orderM.ID, order.Items)
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		events := fromTrackingDomain(orderM.ID, order.Tracking)
		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates ledger constraints")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user or gift")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items and tracking history.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the order row on the primary until the surrounding transaction ends.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *orderRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := withOrderDetails(db).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultOrderListLimit
	}

	var orderModels []*model.OrderModel
	if err := withOrderDetails(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update persists the mutable order columns. Items and tracking are never rewritten.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	var partner any
	if order.DeliveryPartner != nil {
		partner = datatypes.NewJSONType(model.DeliveryPartnerData{
			Name:  order.DeliveryPartner.Name,
			Phone: order.DeliveryPartner.Phone,
		})
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":                 order.Status.String(),
			"special_instructions":   order.SpecialInstructions,
			"payment_status":         string(order.Payment.Status),
			"payment_transaction_id": order.Payment.TransactionID,
			"delivery_partner":       partner,
			"updated_at":             order.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates ledger constraints")
		}

		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendTracking adds one event to the order's tracking history.
func (repo *orderRepository) AppendTracking(ctx context.Context, orderID uuid.UUID, event entity.TrackingEvent) error {
	eventM := &model.OrderTrackingEventModel{
		OrderID:     orderID,
		Status:      event.Status.String(),
		Description: event.Description,
		OccurredAt:  event.Timestamp,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to append tracking event")
	}

	return nil
}

func withOrderDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Tracking", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") })
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel (with preloaded items and tracking) to a domain Order.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	recipient := data.Recipient.Data()
	address := data.DeliveryAddress.Data()

	order := &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		Recipient: entity.Recipient{
			Name:         recipient.Name,
			Age:          recipient.Age,
			Gender:       entity.Gender(recipient.Gender),
			Relationship: recipient.Relationship,
			Phone:        recipient.Phone,
		},
		DeliveryAddress: entity.DeliveryAddress{
			Street:     address.Street,
			City:       address.City,
			PostalCode: address.PostalCode,
			Country:    address.Country,
			Notes:      address.Notes,
		},
		Payment: entity.PaymentInfo{
			Method:        entity.PaymentMethod(data.PaymentMethod),
			Status:        entity.PaymentStatus(data.PaymentStatus),
			TransactionID: data.PaymentTransactionID,
		},
		Status:              entity.OrderStatus(data.Status),
		DeliveryTime:        data.DeliveryTime,
		SpecialInstructions: data.SpecialInstructions,
		TotalAmount:         data.TotalAmount,
		DeliveryFee:         data.DeliveryFee,
		Tax:                 data.Tax,
		Discount:            data.Discount,
		Items:               make([]entity.OrderItem, 0, len(data.Items)),
		Tracking:            make([]entity.TrackingEvent, 0, len(data.Tracking)),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.DeliveryPartner != nil {
		partner := data.DeliveryPartner.Data()
		order.DeliveryPartner = &entity.DeliveryPartner{Name: partner.Name, Phone: partner.Phone}
	}

	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			GiftID:   item.GiftID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	for _, event := range data.Tracking {
		order.Tracking = append(order.Tracking, entity.TrackingEvent{
			Status:      entity.OrderStatus(event.Status),
			Timestamp:   event.OccurredAt,
			Description: event.Description,
		})
	}

	return order
}

// fromOrderDomain converts the order row of a domain Order. Items and tracking are mapped separately.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:     data.ID,
		UserID: data.UserID,
		Recipient: datatypes.NewJSONType(model.RecipientData{
			Name:         data.Recipient.Name,
			Age:          data.Recipient.Age,
			Gender:       data.Recipient.Gender.String(),
			Relationship: data.Recipient.Relationship,
			Phone:        data.Recipient.Phone,
		}),
		DeliveryAddress: datatypes.NewJSONType(model.AddressData{
			Street:     data.DeliveryAddress.Street,
			City:       data.DeliveryAddress.City,
			PostalCode: data.DeliveryAddress.PostalCode,
			Country:    data.DeliveryAddress.Country,
			Notes:      data.DeliveryAddress.Notes,
		}),
		PaymentMethod:        string(data.Payment.Method),
		PaymentStatus:        string(data.Payment.Status),
		PaymentTransactionID: data.Payment.TransactionID,
		Status:               data.Status.String(),
		DeliveryTime:         data.DeliveryTime,
		SpecialInstructions:  data.SpecialInstructions,
		TotalAmount:          data.TotalAmount,
		DeliveryFee:          data.DeliveryFee,
		Tax:                  data.Tax,
		Discount:             data.Discount,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.DeliveryPartner != nil {
		partner := datatypes.NewJSONType(model.DeliveryPartnerData{
			Name:  data.DeliveryPartner.Name,
			Phone: data.DeliveryPartner.Phone,
		})
		orderM.DeliveryPartner = &partner
	}

	return orderM
}

func fromOrderItemsDomain(orderID uuid.UUID, items []entity.OrderItem) []model.OrderItemModel {
	models := make([]model.OrderItemModel, 0, len(items))
	for i, item := range items {
		models = append(models, model.OrderItemModel{
			OrderID:  orderID,
			Position: i,
			GiftID:   item.GiftID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return models
}

func fromTrackingDomain(orderID uuid.UUID, events []entity.TrackingEvent) []model.OrderTrackingEventModel {
	models := make([]model.OrderTrackingEventModel, 0, len(events))
	for _, event := range events {
		models = append(models, model.OrderTrackingEventModel{
			OrderID:     orderID,
			Status:      event.Status.String(),
			Description: event.Description,
			OccurredAt:  event.Timestamp,
		})
	}

	return models
}
