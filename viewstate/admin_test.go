package viewstate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fespace-studio/fespace/models"
	"github.com/fespace-studio/fespace/store"
)

func TestAdminLiveListsReflectWrites(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	state := newAdminState(t, r)

	assert.Empty(t, state.Services())
	assert.Equal(t, int64(0), state.ClientCount())

	state.AddService("Desain Interior", "Interior ", "Full interior design package",
		15_000_000, "2-4 minggu", "Konsultasi\n3D render", nil, admin.ID)

	require.Eventually(t, func() bool {
		return len(state.Services()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "interior", state.Services()[0].Category, "category is stored lowercased and trimmed")

	seedClient(t, r, "Budi", "budi@gmail.com")
	require.Eventually(t, func() bool {
		return state.ClientCount() == 1 && len(state.Clients()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAdminPortfolioCRUD(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	state := newAdminState(t, r)

	state.AddPortfolio("Rumah Minimalis Tropis", "Renovasi rumah dua lantai", "residential", 2024, nil, admin.ID)

	require.Eventually(t, func() bool {
		return len(state.Portfolios()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	item := state.Portfolios()[0]
	item.Title = "Rumah Tropis Revisi"
	state.UpdatePortfolio(&item)

	require.Eventually(t, func() bool {
		list := state.Portfolios()
		return len(list) == 1 && list[0].Title == "Rumah Tropis Revisi"
	}, 2*time.Second, 10*time.Millisecond)

	state.DeletePortfolio(&item)
	require.Eventually(t, func() bool {
		return len(state.Portfolios()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

// Filter composition: the filtered view must equal the intersection of
// applying each predicate independently to the unfiltered list.
func TestFilteredOrdersComposition(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	budi := seedClient(t, r, "Budi Santoso", "budi@gmail.com")
	sari := seedClient(t, r, "Sari Dewi", "sari@gmail.com")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1, LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 10, Status: models.StatusPending, CreatedAt: base},
		{ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1, LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 20, Status: models.StatusApproved, CreatedAt: base.AddDate(0, 0, 5)},
		{ClientID: sari.ID, AdminID: admin.ID, ServiceID: 1, LocationAddress: "Jl. Anggrek No. 3, Jakarta", Budget: 30, Status: models.StatusPending, CreatedAt: base.AddDate(0, 0, 10)},
		{ClientID: sari.ID, AdminID: admin.ID, ServiceID: 1, LocationAddress: "Jl. Anggrek No. 3, Jakarta", Budget: 40, Status: models.StatusCompleted, CreatedAt: base.AddDate(0, 0, 15)},
	}
	for i := range orders {
		require.NoError(t, r.store.InsertOrder(&orders[i]))
	}

	state := newAdminState(t, r)
	require.Eventually(t, func() bool {
		return len(state.Orders()) == len(orders)
	}, 2*time.Second, 10*time.Millisecond)

	status := models.StatusPending
	clientName := "budi"
	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 7)

	state.SetStatusFilter(&status)
	state.SetClientNameFilter(&clientName)
	state.SetDateRangeFilter(&start, &end)

	got := state.FilteredOrders()

	// Independently apply each predicate and intersect.
	var want []uint
	for _, order := range state.Orders() {
		if order.Status != status {
			continue
		}
		client, err := r.users.GetUserByID(order.ClientID)
		require.NoError(t, err)
		if client == nil || !strings.Contains(strings.ToLower(client.Name), clientName) {
			continue
		}
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		want = append(want, order.ID)
	}

	var gotIDs []uint
	for _, order := range got {
		gotIDs = append(gotIDs, order.ID)
	}
	assert.Equal(t, want, gotIDs)
	require.Len(t, got, 1)
	assert.Equal(t, orders[0].ID, got[0].ID)

	// Clearing the filters restores the full list.
	state.SetStatusFilter(nil)
	state.SetClientNameFilter(nil)
	state.SetDateRangeFilter(nil, nil)
	assert.Len(t, state.FilteredOrders(), len(orders))
}

func TestUpdateOrderStatusReplacesRecord(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	budi := seedClient(t, r, "Budi", "budi@gmail.com")
	state := newAdminState(t, r)

	order := models.Order{
		ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1,
		LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 10,
		Status: models.StatusPending,
	}
	require.NoError(t, r.store.InsertOrder(&order))
	before, err := r.store.GetOrderByID(order.ID)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	state.UpdateOrderStatus(before, models.StatusApproved)

	after, err := r.store.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "UpdatedAt must be strictly greater")

	// No other field changes.
	assert.Equal(t, before.ClientID, after.ClientID)
	assert.Equal(t, before.LocationAddress, after.LocationAddress)
	assert.Equal(t, before.Budget, after.Budget)
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Second)
}

func TestUpdateOrderStatusRefusesIllegalTransition(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	budi := seedClient(t, r, "Budi", "budi@gmail.com")
	state := newAdminState(t, r)

	order := models.Order{
		ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1,
		LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 10,
		Status: models.StatusPending,
	}
	require.NoError(t, r.store.InsertOrder(&order))

	state.UpdateOrderStatus(&order, models.StatusCompleted)

	got, err := r.store.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status, "illegal transition must be refused")

	select {
	case msg := <-state.C():
		assert.Contains(t, msg, "Cannot move order")
	default:
		t.Fatal("expected a user notice for the refused transition")
	}

	// With the override enabled the admin may force any status.
	state.AllowStatusOverride = true
	state.UpdateOrderStatus(got, models.StatusCompleted)

	got, err = r.store.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestUploadDesignSetsPathAndAppendsDocument(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	budi := seedClient(t, r, "Budi", "budi@gmail.com")
	state := newAdminState(t, r)

	order := models.Order{
		ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1,
		LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 10,
		Status: models.StatusPending,
	}
	require.NoError(t, r.store.InsertOrder(&order))

	designPath := "/data/uploads/upload_1717956000000_a1b2c3d4.pdf"
	state.UploadDesign(&order, designPath, admin.ID)

	got, err := r.store.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DesignPath)
	assert.Equal(t, designPath, *got.DesignPath)

	docs, err := r.store.ListDocumentsByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, models.DocDesignDraft, docs[0].DocType)
	assert.Equal(t, admin.ID, docs[0].UploadedBy)
	assert.Equal(t, "upload_1717956000000_a1b2c3d4.pdf", docs[0].FileName)
	require.NotNil(t, docs[0].Description)
}

func TestAdminProfileResolvedByFixedEmail(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	state := newAdminState(t, r)

	profile := state.AdminProfile()
	got := profile.Get()
	require.NotNil(t, got)
	assert.Equal(t, store.SeedAdminEmail, got.Email)

	updated := *admin
	updated.Name = "Rahayu Studio"
	state.UpdateAdminProfile(&updated)

	require.Eventually(t, func() bool {
		current := profile.Get()
		return current != nil && current.Name == "Rahayu Studio"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAdminDocumentManagement(t *testing.T) {
	r := setupTestRepos(t)
	admin := seedAdmin(t, r)
	budi := seedClient(t, r, "Budi", "budi@gmail.com")
	state := newAdminState(t, r)

	order := models.Order{
		ClientID: budi.ID, AdminID: admin.ID, ServiceID: 1,
		LocationAddress: "Jl. Melati No. 12, Bandung", Budget: 10,
		Status: models.StatusPending,
	}
	require.NoError(t, r.store.InsertOrder(&order))

	state.UploadDocument(order.ID, admin.ID, "/u/a.jpg", "a.jpg", models.DocLocationPhoto, nil)
	state.UploadDocument(order.ID, admin.ID, "/u/b.pdf", "b.pdf", models.DocFinalDesign, nil)

	all := state.GetOrderDocuments(order.ID)
	require.Eventually(t, func() bool {
		return len(all.Get()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	finals := state.GetOrderDocumentsByType(order.ID, models.DocFinalDesign)
	require.Eventually(t, func() bool {
		list := finals.Get()
		return len(list) == 1 && list[0].FileName == "b.pdf"
	}, 2*time.Second, 10*time.Millisecond)

	docs := all.Get()
	for i := range docs {
		state.DeleteDocument(&docs[i])
	}
	require.Eventually(t, func() bool {
		return len(all.Get()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
