package inventory

import (
	"context"
	"io"
	"strconv"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/domain/actor"
	domain "github.com/BruksfildServices01/barbershop-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

// UploadProductImage converte a imagem para webp, sobe no bucket e grava a URL no produto.
type UploadProductImage struct {
	repo    domain.Repository
	store   storage.ObjectStore
	maxSide int
	audit   *audit.Dispatcher
	clock   timezone.Clock
}

func NewUploadProductImage(
	repo domain.Repository,
	store storage.ObjectStore,
	maxSide int,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *UploadProductImage {
	return &UploadProductImage{repo: repo, store: store, maxSide: maxSide, audit: audit, clock: clock}
}

func (uc *UploadProductImage) Execute(
	ctx context.Context,
	a actor.Actor,
	productID string,
	image io.Reader,
) (string, error) {

	if err := a.RequireAdmin(); err != nil {
		return "", err
	}
	if uc.store == nil {
		return "", httperr.ErrBusiness("image_upload_disabled")
	}

	if _, err := uc.repo.GetProduct(ctx, a.ShopID, productID); err != nil {
		return "", err
	}

	body, err := storage.ToWebP(image, uc.maxSide)
	if err != nil {
		return "", err
	}

	version := strconv.FormatInt(uc.clock.Now().UnixNano(), 36)
	url, err := uc.store.Put(ctx, storage.ProductImageKey(a.ShopID, productID, version), "image/webp", body)
	if err != nil {
		return "", err
	}

	if err := uc.repo.SetImageURL(ctx, a.ShopID, productID, url, a.UserID); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   a.ShopID,
		UserID:   a.UserID,
		Action:   "product_image_uploaded",
		Entity:   "product",
		EntityID: productID,
	})

	return url, nil
}
