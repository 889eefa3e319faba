package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PhotoUploader is the slice of the storage client the delivery flow needs.
type PhotoUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type DeliveryService struct {
	Photos    *repository.DeliveryPhotoRepository
	OrderRepo *repository.OrderRepository
	Storage   PhotoUploader
	Log       *zap.Logger
}

func NewDeliveryService(
	pr *repository.DeliveryPhotoRepository,
	or *repository.OrderRepository,
	storage PhotoUploader,
	log *zap.Logger,
) *DeliveryService {
	return &DeliveryService{
		Photos:    pr,
		OrderRepo: or,
		Storage:   storage,
		Log:       log,
	}
}

// UploadPhoto stores a driver's proof-of-delivery photo and marks the order
// delivered.
func (s *DeliveryService) UploadPhoto(
	ctx context.Context,
	orderNumber string,
	driverAccountID int64,
	filename, contentType string,
	body io.Reader,
) (*model.DeliveryPhoto, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.New("file must be an image")
	}

	order, err := s.OrderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil || order.Status == model.OrderStatusOpen {
		return nil, errors.New("order not found")
	}

	key := orderNumber + "/" + uuid.NewString() + path.Ext(filename)

	publicURL, err := s.Storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	photoID, err := s.Photos.Create(ctx, order.OrderID, key, publicURL, driverAccountID)
	if err != nil {
		return nil, err
	}

	if err := s.OrderRepo.MarkDelivered(ctx, order.OrderID); err != nil {
		// the photo is saved either way
		s.Log.Warn("mark delivered failed", zap.String("order_number", orderNumber), zap.Error(err))
	}

	return &model.DeliveryPhoto{
		PhotoID:         photoID,
		OrderID:         order.OrderID,
		ObjectKey:       key,
		PublicURL:       publicURL,
		DriverAccountID: driverAccountID,
	}, nil
}

// ListPhotos returns the proof-of-delivery photos for an order.
func (s *DeliveryService) ListPhotos(ctx context.Context, orderNumber string) ([]model.DeliveryPhoto, error) {
	order, err := s.OrderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order not found")
	}
	photos, err := s.Photos.ListByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if photos == nil {
		photos = []model.DeliveryPhoto{}
	}
	return photos, nil
}
