package services

import (
	"context"
	"errors"
	"time"

	"campuseats/internal/domain"
	"campuseats/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAdminImmutable = errors.New("admin accounts cannot be banned or deleted")
)

const analyticsDays = 7

type Stats struct {
	TotalVendors  int64          `json:"totalVendors"`
	ActiveVendors int64          `json:"activeVendors"`
	TotalUsers    int64          `json:"totalUsers"`
	TotalOrders   int64          `json:"totalOrders"`
	TotalRevenue  int64          `json:"totalRevenue"`
	OrdersToday   int64          `json:"ordersToday"`
	RecentOrders  []domain.Order `json:"recentOrders"`
}

type Analytics struct {
	OrdersPerDay  []repository.DayCount   `json:"ordersPerDay"`
	RevenuePerDay []repository.DayRevenue `json:"revenuePerDay"`
	TopVendors    []repository.VendorRank `json:"topVendors"`
}

type AdminService struct {
	stats   repository.StatsRepository
	orders  repository.OrderRepository
	vendors repository.VendorRepository
	menu    repository.MenuItemRepository
	users   repository.UserRepository
	now     func() time.Time
}

func NewAdminService(
	stats repository.StatsRepository,
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	menu repository.MenuItemRepository,
	users repository.UserRepository,
) *AdminService {
	return &AdminService{
		stats:   stats,
		orders:  orders,
		vendors: vendors,
		menu:    menu,
		users:   users,
		now:     time.Now,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	totalVendors, err := s.stats.CountVendors(false)
	if err != nil {
		return nil, err
	}
	activeVendors, err := s.stats.CountVendors(true)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.stats.CountUsers()
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.stats.CountOrders()
	if err != nil {
		return nil, err
	}
	revenue, err := s.stats.CompletedRevenue()
	if err != nil {
		return nil, err
	}

	midnight := startOfDay(s.now())
	ordersToday, err := s.stats.CountOrdersSince(midnight)
	if err != nil {
		return nil, err
	}

	recent, err := s.stats.RecentOrders(10)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalVendors:  totalVendors,
		ActiveVendors: activeVendors,
		TotalUsers:    totalUsers,
		TotalOrders:   totalOrders,
		TotalRevenue:  revenue,
		OrdersToday:   ordersToday,
		RecentOrders:  recent,
	}, nil
}

// Analytics covers the trailing week. Days with no orders are filled
// with zero rows so charts always get a full 7-day series.
func (s *AdminService) Analytics(ctx context.Context) (*Analytics, error) {
	today := startOfDay(s.now())
	since := today.AddDate(0, 0, -(analyticsDays - 1))

	counts, err := s.stats.OrdersPerDay(since)
	if err != nil {
		return nil, err
	}
	revenues, err := s.stats.RevenuePerDay(since)
	if err != nil {
		return nil, err
	}
	top, err := s.stats.TopVendors(5)
	if err != nil {
		return nil, err
	}

	countByDate := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByDate[c.Date] = c.Orders
	}
	revenueByDate := make(map[string]int64, len(revenues))
	for _, r := range revenues {
		revenueByDate[r.Date] = r.Revenue
	}

	out := &Analytics{TopVendors: top}
	for i := 0; i < analyticsDays; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		out.OrdersPerDay = append(out.OrdersPerDay, repository.DayCount{Date: date, Orders: countByDate[date]})
		out.RevenuePerDay = append(out.RevenuePerDay, repository.DayRevenue{Date: date, Revenue: revenueByDate[date]})
	}

	return out, nil
}

func (s *AdminService) ListVendors(ctx context.Context, filter repository.VendorFilter) ([]domain.Vendor, error) {
	return s.vendors.FindFiltered(filter)
}

func (s *AdminService) ToggleVendor(ctx context.Context, id uint64) (*domain.Vendor, error) {
	vendor, err := s.vendors.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	vendor.IsActive = !vendor.IsActive
	if err := s.vendors.Update(vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor removes the vendor and its whole menu.
func (s *AdminService) DeleteVendor(ctx context.Context, id uint64) error {
	vendor, err := s.vendors.FindByID(id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return ErrVendorNotFound
	}

	if err := s.menu.DeleteByVendor(id); err != nil {
		return err
	}
	return s.vendors.Delete(id)
}

func (s *AdminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return s.users.FindFiltered(filter)
}

func (s *AdminService) ToggleUserBan(ctx context.Context, id uint64) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return nil, ErrAdminImmutable
	}

	user.IsActive = !user.IsActive
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return ErrAdminImmutable
	}

	return s.users.Delete(id)
}

func (s *AdminService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.orders.FindFiltered(filter)
}

func (s *AdminService) OrderDetails(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
