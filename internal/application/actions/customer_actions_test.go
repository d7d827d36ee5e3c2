package actions

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCustomerActions_Create(t *testing.T) {
	t.Run("valid submission persists with the placeholder image", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		nav := new(mockNavigator)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		var saved *partner.Customer
		repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Customer")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*partner.Customer)
			}).
			Return(nil)
		cache.On("NotifyListChanged", mock.Anything, CustomersPath).Return()
		nav.On("NavigateTo", CustomersPath).Return()

		form := customerFormValues("Amy Burns", "amy@burns.com", "/customers/attacker.png")
		state := a.Create(context.Background(), ActionState{}, form, nav)

		assert.Nil(t, state)
		require.NotNil(t, saved)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "Amy Burns", saved.Name)
		assert.Equal(t, "amy@burns.com", saved.Email)
		assert.Equal(t, partner.PlaceholderImagePath, saved.ImageURL)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
		nav.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		a := NewCustomerActions(repo, new(mockListCache), zap.NewNop())

		state := a.Create(context.Background(), ActionState{}, url.Values{}, new(mockNavigator))

		require.NotNil(t, state)
		assert.Equal(t, "Missing Fields. Failed to Create Customer.", state.Message)
		assert.Equal(t, []string{"Please enter a customer name."}, state.Errors["name"])
		assert.Equal(t, []string{"Please enter a valid email."}, state.Errors["email"])
		assert.NotContains(t, state.Errors, "imageURL")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure keeps the user on the form", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		nav := new(mockNavigator)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("unique violation"))

		form := customerFormValues("Amy Burns", "amy@burns.com", "")
		state := a.Create(context.Background(), ActionState{}, form, nav)

		require.NotNil(t, state)
		assert.Equal(t, "Database error: Failed to create customer.", state.Message)
		cache.AssertNotCalled(t, "NotifyListChanged", mock.Anything, mock.Anything)
		nav.AssertNotCalled(t, "NavigateTo", mock.Anything)
	})
}

func TestCustomerActions_Update(t *testing.T) {
	t.Run("valid submission rewrites the customer", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		nav := new(mockNavigator)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		var saved *partner.Customer
		repo.On("Update", mock.Anything, mock.AnythingOfType("*partner.Customer")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*partner.Customer)
			}).
			Return(nil)
		cache.On("NotifyListChanged", mock.Anything, CustomersPath).Return()
		nav.On("NavigateTo", CustomersPath).Return()

		form := customerFormValues("Amy Burns", "amy@burns.com", "/customers/amy.png")
		state := a.Update(context.Background(), "cust-1", ActionState{}, form, nav)

		assert.Nil(t, state)
		require.NotNil(t, saved)
		assert.Equal(t, "cust-1", saved.ID)
		assert.Equal(t, "/customers/amy.png", saved.ImageURL)
	})

	t.Run("update enforces the image prefix", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		a := NewCustomerActions(repo, new(mockListCache), zap.NewNop())

		form := customerFormValues("Amy Burns", "amy@burns.com", "https://evil.example/avatar.png")
		state := a.Update(context.Background(), "cust-1", ActionState{}, form, new(mockNavigator))

		require.NotNil(t, state)
		assert.Equal(t, "Missing Fields. Failed to Update Customer.", state.Message)
		assert.Contains(t, state.Errors, "imageURL")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("store failure uses the update message", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		nav := new(mockNavigator)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		form := customerFormValues("Amy Burns", "amy@burns.com", "/customers/amy.png")
		state := a.Update(context.Background(), "cust-1", ActionState{}, form, nav)

		require.NotNil(t, state)
		assert.Equal(t, "Database Error. Failed to Update Customer.", state.Message)
		nav.AssertNotCalled(t, "NavigateTo", mock.Anything)
	})
}

func TestCustomerActions_Delete(t *testing.T) {
	t.Run("drops the cached list without navigating", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		repo.On("Delete", mock.Anything, "cust-1").Return(nil)
		cache.On("NotifyListChanged", mock.Anything, CustomersPath).Return()

		assert.Nil(t, a.Delete(context.Background(), "cust-1"))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("store failure returns a message", func(t *testing.T) {
		repo := new(mockCustomerRepo)
		cache := new(mockListCache)
		a := NewCustomerActions(repo, cache, zap.NewNop())

		repo.On("Delete", mock.Anything, "cust-1").Return(errors.New("timeout"))

		state := a.Delete(context.Background(), "cust-1")

		require.NotNil(t, state)
		assert.Equal(t, "Database Error. Failed to Delete Customer.", state.Message)
		cache.AssertNotCalled(t, "NotifyListChanged", mock.Anything, mock.Anything)
	})
}
