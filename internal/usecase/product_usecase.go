package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 公開カタログの読み取り。ワークフローからは参照のみ。
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ProductListOutput struct {
	Products []model.Product `json:"products"`
}

type ProductSearchInput struct {
	CategoryID int64
	Search     string
}

type ProductSearchOutput struct {
	SearchProducts []model.Product `json:"search_products"`
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Products: products}, nil
}

type ProductRelatedOutput struct {
	RelatedProducts []model.Product `json:"related_products"`
}

// 同カテゴリの関連商品（本体が無ければ404）
func (u *ProductUsecase) GetRelated(ctx context.Context, productID int64) (ProductRelatedOutput, error) {
	if productID <= 0 {
		return ProductRelatedOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductRelatedOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductRelatedOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	related, err := u.productRepo.ListRelated(ctx, p.CategoryID, p.ID)
	if err != nil {
		return ProductRelatedOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductRelatedOutput{RelatedProducts: related}, nil
}

func (u *ProductUsecase) Search(ctx context.Context, in ProductSearchInput) (ProductSearchOutput, error) {
	if in.CategoryID < 0 {
		return ProductSearchOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	if len(in.Search) > 255 {
		return ProductSearchOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}

	products, err := u.productRepo.Search(ctx, repo.ProductSearchQuery{
		CategoryID: in.CategoryID,
		Search:     in.Search,
	})
	if err != nil {
		return ProductSearchOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductSearchOutput{SearchProducts: products}, nil
}
