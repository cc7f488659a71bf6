package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
)

func TestStoreReviewService(t *testing.T) {
	svc := setupServiceTest(t, nil)
	author := svc.user(t, "ana")
	other := svc.user(t, "bia")
	store := svc.store(t, other, "Loja")

	t.Run("Defaults author to the caller", func(t *testing.T) {
		review, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{StoreID: store.ID, Rating: 5, Comment: "Ótima"})
		require.NoError(t, err)
		assert.Equal(t, author.ID, review.UserID)
		require.NotNil(t, review.User)
		assert.Equal(t, "ana", review.User.Username)
		require.NotNil(t, review.Store)
		assert.Equal(t, "Loja", review.Store.Name)
	})

	t.Run("Explicit author", func(t *testing.T) {
		review, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{UserID: other.ID, StoreID: store.ID, Rating: 3})
		require.NoError(t, err)
		assert.Equal(t, other.ID, review.UserID)
	})

	t.Run("Missing references", func(t *testing.T) {
		_, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{StoreID: 9999, Rating: 4})
		assert.ErrorIs(t, err, ErrInvalidReference)

		_, err = svc.storeReviews.Create(author.ID, CreateStoreReviewInput{UserID: 9999, StoreID: store.ID, Rating: 4})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("Lists newest first by store", func(t *testing.T) {
		otherStore := svc.store(t, other, "Outra")
		_, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{StoreID: otherStore.ID, Rating: 1})
		require.NoError(t, err)

		reviews, err := svc.storeReviews.List(&store.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, 3, reviews[0].Rating)
		assert.Equal(t, 5, reviews[1].Rating)

		all, err := svc.storeReviews.List(nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Partial update", func(t *testing.T) {
		review, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{StoreID: store.ID, Rating: 2, Comment: "Demorou"})
		require.NoError(t, err)

		updated, err := svc.storeReviews.Update(review.ID, UpdateReviewInput{Rating: intPtr(4)})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Rating)
		assert.Equal(t, "Demorou", updated.Comment)
	})

	t.Run("Delete missing", func(t *testing.T) {
		_, err := svc.storeReviews.Delete(9999)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

func TestProductReviewService(t *testing.T) {
	svc := setupServiceTest(t, nil)
	author := svc.user(t, "ana")
	store := svc.store(t, author, "Loja")
	product := svc.product(t, store, svc.category(t, "Vasos"), "Vaso")

	review, err := svc.productReviews.Create(author.ID, CreateProductReviewInput{ProductID: product.ID, Rating: 4})
	require.NoError(t, err)
	require.NotNil(t, review.Product)
	assert.Equal(t, "Vaso", review.Product.Name)
	require.NotNil(t, review.Product.Store)
	assert.Equal(t, "Loja", review.Product.Store.Name)

	_, err = svc.productReviews.Create(author.ID, CreateProductReviewInput{ProductID: 9999, Rating: 4})
	assert.ErrorIs(t, err, ErrInvalidReference)

	reviews, err := svc.productReviews.List(&product.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	_, err = svc.products.Delete(product.ID)
	require.NoError(t, err)
	_, err = svc.productReviews.Get(review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestCommentService(t *testing.T) {
	svc := setupServiceTest(t, nil)
	author := svc.user(t, "ana")
	store := svc.store(t, author, "Loja")
	product := svc.product(t, store, svc.category(t, "Vasos"), "Vaso")
	storeReview, err := svc.storeReviews.Create(author.ID, CreateStoreReviewInput{StoreID: store.ID, Rating: 5})
	require.NoError(t, err)
	productReview, err := svc.productReviews.Create(author.ID, CreateProductReviewInput{ProductID: product.ID, Rating: 5})
	require.NoError(t, err)

	t.Run("Target rules", func(t *testing.T) {
		tests := []struct {
			name    string
			input   CreateCommentInput
			wantErr error
		}{
			{name: "Store review", input: CreateCommentInput{StoreReviewID: &storeReview.ID, Content: "Obrigado"}},
			{name: "Product review", input: CreateCommentInput{ProductReviewID: &productReview.ID, Content: "Valeu"}},
			{name: "No target", input: CreateCommentInput{Content: "?"}, wantErr: ErrCommentTarget},
			{
				name:    "Both targets",
				input:   CreateCommentInput{StoreReviewID: &storeReview.ID, ProductReviewID: &productReview.ID, Content: "?"},
				wantErr: ErrCommentTarget,
			},
			{name: "Missing review", input: CreateCommentInput{StoreReviewID: uintPtr(9999), Content: "?"}, wantErr: ErrInvalidReference},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				comment, err := svc.comments.Create(author.ID, tt.input)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, comment.User)
				assert.Equal(t, author.ID, comment.User.ID)
			})
		}
	})

	t.Run("Filters by review", func(t *testing.T) {
		comments, err := svc.comments.List(repository.CommentFilter{StoreReviewID: &storeReview.ID})
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Obrigado", comments[0].Content)
	})

	t.Run("Review carries its comments", func(t *testing.T) {
		review, err := svc.storeReviews.Get(storeReview.ID)
		require.NoError(t, err)
		require.Len(t, review.Comments, 1)
		require.NotNil(t, review.Comments[0].User)
	})

	t.Run("Deleting the review removes its comments", func(t *testing.T) {
		_, err := svc.storeReviews.Delete(storeReview.ID)
		require.NoError(t, err)

		comments, err := svc.comments.List(repository.CommentFilter{StoreReviewID: &storeReview.ID})
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
