package services

import (
	"errors"

	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeOrderRepo struct {
	orders        map[uint]*models.Order
	details       map[uint][]models.OrderDetail
	confirmations map[uint]*models.Confirmation
	serials       []models.VehicleSerial
	variants      []models.VehicleVariant
	nextID        uint
	failCreate    bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:        make(map[uint]*models.Order),
		details:       make(map[uint][]models.OrderDetail),
		confirmations: make(map[uint]*models.Confirmation),
	}
}

func (r *fakeOrderRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeOrderRepo) CreateStandard(order *models.Order, serial *models.VehicleSerial, detail *models.OrderDetail) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	order.ID = r.id()
	r.orders[order.ID] = order
	r.serials = append(r.serials, *serial)
	detail.ID = r.id()
	detail.OrderID = order.ID
	detail.SerialID = &serial.SerialNumber
	r.details[order.ID] = append(r.details[order.ID], *detail)
	return nil
}

func (r *fakeOrderRepo) CreateCustom(order *models.Order, detail *models.OrderDetail, confirmation *models.Confirmation) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	order.ID = r.id()
	r.orders[order.ID] = order
	detail.ID = r.id()
	detail.OrderID = order.ID
	detail.SerialID = nil
	r.details[order.ID] = append(r.details[order.ID], *detail)
	confirmation.ID = r.id()
	confirmation.OrderDetailID = detail.ID
	r.confirmations[detail.ID] = confirmation
	return nil
}

func (r *fakeOrderRepo) Fulfill(variant *models.VehicleVariant, serial *models.VehicleSerial, detail *models.OrderDetail, confirmation *models.Confirmation) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	variant.ID = r.id()
	r.variants = append(r.variants, *variant)
	serial.VariantID = variant.ID
	r.serials = append(r.serials, *serial)
	detail.SerialID = &serial.SerialNumber
	for i, d := range r.details[detail.OrderID] {
		if d.ID == detail.ID {
			r.details[detail.OrderID][i] = *detail
		}
	}
	r.confirmations[detail.ID] = confirmation
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByStaffID(staffID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if order.StaffID == staffID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetDetailsByOrderID(orderID uint) ([]models.OrderDetail, error) {
	return r.details[orderID], nil
}

func (r *fakeOrderRepo) GetPendingDetail(orderID uint) (*models.OrderDetail, error) {
	for _, detail := range r.details[orderID] {
		if detail.SerialID == nil {
			copied := detail
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) GetConfirmationByDetailID(detailID uint) (*models.Confirmation, error) {
	confirmation, ok := r.confirmations[detailID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *confirmation
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateConfirmation(confirmation *models.Confirmation) error {
	r.confirmations[confirmation.OrderDetailID] = confirmation
	return nil
}

// seedOrder registers an order with its detail rows directly.
func (r *fakeOrderRepo) seedOrder(order models.Order, details ...models.OrderDetail) uint {
	order.ID = r.id()
	r.orders[order.ID] = &order
	for _, detail := range details {
		detail.ID = r.id()
		detail.OrderID = order.ID
		r.details[order.ID] = append(r.details[order.ID], detail)
	}
	return order.ID
}

type fakePaymentRepo struct {
	payments   map[uint][]models.Payment
	plans      map[uint]*models.InstallmentPlan
	nextID     uint
	failCreate bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uint][]models.Payment),
		plans:    make(map[uint]*models.InstallmentPlan),
	}
}

func (r *fakePaymentRepo) CreateWithPlan(payment *models.Payment, plan *models.InstallmentPlan) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.nextID++
	payment.ID = r.nextID
	r.payments[payment.OrderID] = append(r.payments[payment.OrderID], *payment)
	if plan != nil {
		r.nextID++
		plan.ID = r.nextID
		plan.PaymentID = payment.ID
		r.plans[payment.ID] = plan
	}
	return nil
}

func (r *fakePaymentRepo) GetByID(id uint) (*models.Payment, error) {
	for _, payments := range r.payments {
		for _, payment := range payments {
			if payment.ID == id {
				copied := payment
				return &copied, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePaymentRepo) GetByOrderID(orderID uint) (*models.Payment, error) {
	payments := r.payments[orderID]
	if len(payments) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	copied := payments[0]
	return &copied, nil
}

func (r *fakePaymentRepo) ListByOrderID(orderID uint) ([]models.Payment, error) {
	return r.payments[orderID], nil
}

func (r *fakePaymentRepo) GetPlanByPaymentID(paymentID uint) (*models.InstallmentPlan, error) {
	plan, ok := r.plans[paymentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *plan
	return &copied, nil
}

func (r *fakePaymentRepo) UpdatePlan(plan *models.InstallmentPlan) error {
	r.plans[plan.PaymentID] = plan
	return nil
}

func (r *fakePaymentRepo) GetAll() ([]models.Payment, error) {
	var all []models.Payment
	for _, payments := range r.payments {
		all = append(all, payments...)
	}
	return all, nil
}

func (r *fakePaymentRepo) seedPayment(orderID uint, amount float64) {
	r.nextID++
	r.payments[orderID] = append(r.payments[orderID], models.Payment{
		ID:      r.nextID,
		OrderID: orderID,
		Method:  models.PaymentMethodFull,
		Amount:  amount,
	})
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*models.User)}
	for i := range users {
		user := users[i]
		repo.users[user.ID] = &user
	}
	return repo
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByDealerID(dealerID uint) ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		if user.DealerID == dealerID {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakePromotionRepo struct {
	promotions []models.Promotion
	links      map[uint][]uint // dealer ID -> promotion IDs
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{links: make(map[uint][]uint)}
}

func (r *fakePromotionRepo) Create(promotion *models.Promotion) error {
	promotion.ID = uint(len(r.promotions) + 1)
	r.promotions = append(r.promotions, *promotion)
	return nil
}

func (r *fakePromotionRepo) GetByID(id uint) (*models.Promotion, error) {
	for _, promotion := range r.promotions {
		if promotion.ID == id {
			copied := promotion
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePromotionRepo) GetAll() ([]models.Promotion, error) {
	return r.promotions, nil
}

func (r *fakePromotionRepo) Update(promotion *models.Promotion) error {
	for i, existing := range r.promotions {
		if existing.ID == promotion.ID {
			r.promotions[i] = *promotion
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePromotionRepo) Delete(id uint) error {
	for i, existing := range r.promotions {
		if existing.ID == id {
			r.promotions = append(r.promotions[:i], r.promotions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePromotionRepo) AssignToDealer(dealerID, promotionID uint) error {
	r.links[dealerID] = append(r.links[dealerID], promotionID)
	return nil
}

func (r *fakePromotionRepo) GetActiveByDealerID(dealerID uint, today string) ([]models.Promotion, error) {
	var active []models.Promotion
	for _, promotionID := range r.links[dealerID] {
		for _, promotion := range r.promotions {
			if promotion.ID != promotionID {
				continue
			}
			if promotion.StartDate <= today && promotion.EndDate >= today {
				active = append(active, promotion)
			}
		}
	}
	return active, nil
}

func (r *fakePromotionRepo) seedActive(dealerID uint, rate string) {
	promotion := models.Promotion{
		StartDate:    "2000-01-01",
		EndDate:      "2099-12-31",
		DiscountRate: rate,
	}
	r.Create(&promotion)
	r.AssignToDealer(dealerID, promotion.ID)
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
}

func newFakeCustomerRepo(customers ...models.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[uint]*models.Customer)}
	for i := range customers {
		customer := customers[i]
		repo.customers[customer.ID] = &customer
	}
	return repo
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *customer
	return &copied, nil
}

func (r *fakeCustomerRepo) GetByPhoneNumber(phone string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.PhoneNumber == phone {
			copied := *customer
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	for _, customer := range r.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	delete(r.customers, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicleModels map[uint]*models.VehicleModel
	variants      map[uint]*models.VehicleVariant
	serials       []models.VehicleSerial
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{
		vehicleModels: make(map[uint]*models.VehicleModel),
		variants:      make(map[uint]*models.VehicleVariant),
	}
}

func (r *fakeVehicleRepo) CreateModel(model *models.VehicleModel) error {
	r.vehicleModels[model.ID] = model
	return nil
}

func (r *fakeVehicleRepo) GetModelByID(id uint) (*models.VehicleModel, error) {
	model, ok := r.vehicleModels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *model
	return &copied, nil
}

func (r *fakeVehicleRepo) GetActiveModels() ([]models.VehicleModel, error) {
	var active []models.VehicleModel
	for _, model := range r.vehicleModels {
		if model.IsActive {
			active = append(active, *model)
		}
	}
	return active, nil
}

func (r *fakeVehicleRepo) UpdateModel(model *models.VehicleModel) error {
	r.vehicleModels[model.ID] = model
	return nil
}

func (r *fakeVehicleRepo) CreateVariant(variant *models.VehicleVariant) error {
	r.variants[variant.ID] = variant
	return nil
}

func (r *fakeVehicleRepo) GetVariantByID(id uint) (*models.VehicleVariant, error) {
	variant, ok := r.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *variant
	return &copied, nil
}

func (r *fakeVehicleRepo) GetVariantsByModelID(modelID uint) ([]models.VehicleVariant, error) {
	var variants []models.VehicleVariant
	for _, variant := range r.variants {
		if variant.ModelID == modelID {
			variants = append(variants, *variant)
		}
	}
	return variants, nil
}

func (r *fakeVehicleRepo) UpdateVariant(variant *models.VehicleVariant) error {
	r.variants[variant.ID] = variant
	return nil
}

func (r *fakeVehicleRepo) CreateSerial(serial *models.VehicleSerial) error {
	r.serials = append(r.serials, *serial)
	return nil
}

func (r *fakeVehicleRepo) GetSerial(serialNumber string) (*models.VehicleSerial, error) {
	for _, serial := range r.serials {
		if serial.SerialNumber == serialNumber {
			copied := serial
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVehicleRepo) GetSerialsByVariantID(variantID uint) ([]models.VehicleSerial, error) {
	var serials []models.VehicleSerial
	for _, serial := range r.serials {
		if serial.VariantID == variantID {
			serials = append(serials, serial)
		}
	}
	return serials, nil
}

type fakeTestDriveRepo struct {
	testDrives []models.TestDrive
	nextID     uint
}

func (r *fakeTestDriveRepo) Create(testDrive *models.TestDrive) error {
	r.nextID++
	testDrive.ID = r.nextID
	r.testDrives = append(r.testDrives, *testDrive)
	return nil
}

func (r *fakeTestDriveRepo) GetByID(id uint) (*models.TestDrive, error) {
	for _, testDrive := range r.testDrives {
		if testDrive.ID == id {
			copied := testDrive
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTestDriveRepo) GetByStaffID(staffID uint) ([]models.TestDrive, error) {
	var result []models.TestDrive
	for _, testDrive := range r.testDrives {
		if testDrive.StaffID == staffID {
			result = append(result, testDrive)
		}
	}
	return result, nil
}

func (r *fakeTestDriveRepo) GetByCustomerID(customerID uint) ([]models.TestDrive, error) {
	var result []models.TestDrive
	for _, testDrive := range r.testDrives {
		if testDrive.CustomerID == customerID {
			result = append(result, testDrive)
		}
	}
	return result, nil
}

func (r *fakeTestDriveRepo) FindScheduledSlot(staffID uint, scheduledTime string) (*models.TestDrive, error) {
	for _, testDrive := range r.testDrives {
		if testDrive.StaffID == staffID && testDrive.ScheduledTime == scheduledTime && testDrive.Status == string(models.TestDriveScheduled) {
			copied := testDrive
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTestDriveRepo) Update(testDrive *models.TestDrive) error {
	for i, existing := range r.testDrives {
		if existing.ID == testDrive.ID {
			r.testDrives[i] = *testDrive
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeDebtCache struct {
	values map[uint]float64
	hits   int
	sets   int
}

func newFakeDebtCache() *fakeDebtCache {
	return &fakeDebtCache{values: make(map[uint]float64)}
}

func (c *fakeDebtCache) GetCustomerDebt(customerID uint) (float64, bool) {
	debt, ok := c.values[customerID]
	if ok {
		c.hits++
	}
	return debt, ok
}

func (c *fakeDebtCache) SetCustomerDebt(customerID uint, debt float64) {
	c.sets++
	c.values[customerID] = debt
}

func (c *fakeDebtCache) InvalidateCustomerDebt(customerID uint) {
	delete(c.values, customerID)
}
