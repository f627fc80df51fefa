package sonnys

// Address represents a customer mailing address.
type Address struct {
	Address1   string `json:"address1,omitempty"   yaml:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"   yaml:"address2,omitempty"`
	City       string `json:"city,omitempty"       yaml:"city,omitempty"`
	State      string `json:"state,omitempty"      yaml:"state,omitempty"`
	Country    string `json:"country,omitempty"    yaml:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
}

// CustomerListItem is the summary customer record returned by the /customer
// list endpoint.
type CustomerListItem struct {
	CustomerID     string `json:"customerId"               yaml:"customerId"`
	FirstName      string `json:"firstName"                yaml:"firstName"`
	LastName       string `json:"lastName"                 yaml:"lastName"`
	PhoneNumber    string `json:"phoneNumber,omitempty"    yaml:"phoneNumber,omitempty"`
	CustomerNumber string `json:"customerNumber,omitempty" yaml:"customerNumber,omitempty"`
	IsActive       bool   `json:"isActive"                 yaml:"isActive"`
	CreatedDate    string `json:"createdDate"              yaml:"createdDate"`
	ModifiedDate   string `json:"modifiedDate,omitempty"   yaml:"modifiedDate,omitempty"`
}

// Customer is the full profile returned by the /customer/{id} detail
// endpoint, including address, loyalty info, and SMS opt-in status.
type Customer struct {
	ID                     string  `json:"id"                               yaml:"id"`
	Number                 string  `json:"number"                           yaml:"number"`
	FirstName              string  `json:"firstName"                        yaml:"firstName"`
	LastName               string  `json:"lastName"                         yaml:"lastName"`
	CompanyName            string  `json:"companyName,omitempty"            yaml:"companyName,omitempty"`
	LoyaltyNumber          string  `json:"loyaltyNumber,omitempty"          yaml:"loyaltyNumber,omitempty"`
	Address                Address `json:"address"                          yaml:"address"`
	Phone                  string  `json:"phone"                            yaml:"phone"`
	Email                  string  `json:"email,omitempty"                  yaml:"email,omitempty"`
	BirthDate              string  `json:"birthDate,omitempty"              yaml:"birthDate,omitempty"`
	IsActive               bool    `json:"isActive"                         yaml:"isActive"`
	AllowSMS               bool    `json:"allowSms"                         yaml:"allowSms"`
	RecurringSMSSignupDate string  `json:"recurringSmsSignupDate,omitempty" yaml:"recurringSmsSignupDate,omitempty"`
	LoyaltySMSSignupDate   string  `json:"loyaltySmsSignupDate,omitempty"   yaml:"loyaltySmsSignupDate,omitempty"`
	ModifyDate             string  `json:"modifyDate"                       yaml:"modifyDate"`
}

// EmployeeListItem is the summary employee record returned by the /employee
// list endpoint.
type EmployeeListItem struct {
	FirstName  string `json:"firstName"  yaml:"firstName"`
	LastName   string `json:"lastName"   yaml:"lastName"`
	EmployeeID int    `json:"employeeId" yaml:"employeeId"`
}

// Employee is the full profile returned by the /employee/{id} detail
// endpoint.
type Employee struct {
	EmployeeID      int    `json:"employeeId"                yaml:"employeeId"`
	FirstName       string `json:"firstName"                 yaml:"firstName"`
	LastName        string `json:"lastName"                  yaml:"lastName"`
	Active          bool   `json:"active"                    yaml:"active"`
	StartDate       string `json:"startDate"                 yaml:"startDate"`
	StartDateChange string `json:"startDateChange,omitempty" yaml:"startDateChange,omitempty"`
	Phone           string `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Email           string `json:"email,omitempty"           yaml:"email,omitempty"`
}

// ClockEntry is a single clock-in/clock-out record for an employee.
type ClockEntry struct {
	ClockIn                string  `json:"clockIn,omitempty"               yaml:"clockIn,omitempty"`
	ClockOut               string  `json:"clockOut,omitempty"              yaml:"clockOut,omitempty"`
	RegularRate            float64 `json:"regularRate"                     yaml:"regularRate"`
	RegularHours           float64 `json:"regularHours"                    yaml:"regularHours"`
	OvertimeEligible       bool    `json:"overtimeEligible"                yaml:"overtimeEligible"`
	OvertimeRate           float64 `json:"overtimeRate"                    yaml:"overtimeRate"`
	OvertimeHours          float64 `json:"overtimeHours"                   yaml:"overtimeHours"`
	WasModified            bool    `json:"wasModified"                     yaml:"wasModified"`
	ModificationTimestamp  string  `json:"modificationTimestamp,omitempty" yaml:"modificationTimestamp,omitempty"`
	WasCreatedInBackOffice bool    `json:"wasCreatedInBackOffice"          yaml:"wasCreatedInBackOffice"`
	SiteCode               string  `json:"siteCode"                        yaml:"siteCode"`
}

// GiftcardListItem is a giftcard liability record.
type GiftcardListItem struct {
	SiteCode     string  `json:"siteCode"               yaml:"siteCode"`
	CompleteDate string  `json:"completeDate,omitempty" yaml:"completeDate,omitempty"`
	Number       string  `json:"number"                 yaml:"number"`
	Value        float64 `json:"value"                  yaml:"value"`
	AmountUsed   float64 `json:"amountUsed"             yaml:"amountUsed"`
	GiftcardID   string  `json:"giftcardId"             yaml:"giftcardId"`
}

// Item is a menu item (wash package, product, or service).
type Item struct {
	SKU              string `json:"sku"                   yaml:"sku"`
	Name             string `json:"name"                  yaml:"name"`
	DepartmentName   string `json:"departmentName"        yaml:"departmentName"`
	PriceAtSite      string `json:"priceAtSite"           yaml:"priceAtSite"`
	CostPerItem      string `json:"costPerItem,omitempty" yaml:"costPerItem,omitempty"`
	IsPromptForPrice bool   `json:"isPromptForPrice"      yaml:"isPromptForPrice"`
	SiteLocation     string `json:"siteLocation"          yaml:"siteLocation"`
}

// Site is a car wash location.
type Site struct {
	SiteID   int    `json:"siteID"             yaml:"siteID"`
	Code     string `json:"code,omitempty"     yaml:"code,omitempty"`
	Name     string `json:"name"               yaml:"name"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// WashbookTag is an RFID tag or barcode associated with an account.
type WashbookTag struct {
	ID      string `json:"id"      yaml:"id"`
	Number  string `json:"number"  yaml:"number"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// WashbookVehicle is a vehicle linked to an account.
type WashbookVehicle struct {
	ID    string `json:"id"              yaml:"id"`
	Plate string `json:"plate,omitempty" yaml:"plate,omitempty"`
}

// WashbookCustomer is the customer info embedded in washbook and recurring
// account details.
type WashbookCustomer struct {
	ID        string `json:"id,omitempty"        yaml:"id,omitempty"`
	Number    string `json:"number,omitempty"    yaml:"number,omitempty"`
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"  yaml:"lastName,omitempty"`
}

// WashbookRecurringInfo holds the recurring billing details embedded in a
// washbook detail.
type WashbookRecurringInfo struct {
	CurrentBillableAmount  float64 `json:"currentBillableAmount"  yaml:"currentBillableAmount"`
	NextBillDate           string  `json:"nextBillDate,omitempty" yaml:"nextBillDate,omitempty"`
	LastBillDate           string  `json:"lastBillDate,omitempty" yaml:"lastBillDate,omitempty"`
	IsOnTrial              bool    `json:"isOnTrial"              yaml:"isOnTrial"`
	RemainingTrialPeriods  int     `json:"remainingTrialPeriods"  yaml:"remainingTrialPeriods"`
}

// WashbookListItem is the summary washbook record returned by the
// /washbook/account/list endpoint.
type WashbookListItem struct {
	ID            string `json:"id"                   yaml:"id"`
	Name          string `json:"name,omitempty"       yaml:"name,omitempty"`
	Balance       string `json:"balance"              yaml:"balance"`
	SignUpDate    string `json:"signUpDate"           yaml:"signUpDate"`
	CancelDate    string `json:"cancelDate,omitempty" yaml:"cancelDate,omitempty"`
	BillingSiteID int    `json:"billingSiteId"        yaml:"billingSiteId"`
	CustomerID    string `json:"customerId,omitempty" yaml:"customerId,omitempty"`
	Status        string `json:"status"               yaml:"status"`
}

// Washbook is the full washbook detail, including customer, vehicles, tags,
// and recurring billing info.
type Washbook struct {
	ID            string                `json:"id"                yaml:"id"`
	Name          string                `json:"name"              yaml:"name"`
	Balance       string                `json:"balance,omitempty" yaml:"balance,omitempty"`
	Customer      WashbookCustomer      `json:"customer"          yaml:"customer"`
	Status        string                `json:"status"            yaml:"status"`
	RecurringInfo WashbookRecurringInfo `json:"recurringInfo"     yaml:"recurringInfo"`
	Tags          []WashbookTag         `json:"tags"              yaml:"tags"`
	Vehicles      []WashbookVehicle     `json:"vehicles"          yaml:"vehicles"`
}

// RecurringStatus is a status entry in a recurring account's history.
type RecurringStatus struct {
	Status string `json:"status" yaml:"status"`
	Date   string `json:"date"   yaml:"date"`
}

// RecurringBilling is a billing entry in a recurring account's payment
// history.
type RecurringBilling struct {
	AmountCharged            float64 `json:"amountCharged"                      yaml:"amountCharged"`
	Date                     string  `json:"date"                               yaml:"date"`
	LastFourCC               string  `json:"lastFourCC"                         yaml:"lastFourCC"`
	CreditCardExpirationDate string  `json:"creditCardExpirationDate,omitempty" yaml:"creditCardExpirationDate,omitempty"`
}

// RecurringListItem is the summary recurring account record returned by the
// /recurring/account/list endpoint.
type RecurringListItem struct {
	ID              string   `json:"id"                   yaml:"id"`
	Name            string   `json:"name,omitempty"       yaml:"name,omitempty"`
	Balance         *float64 `json:"balance,omitempty"    yaml:"balance,omitempty"`
	SignUpDate      string   `json:"signUpDate"           yaml:"signUpDate"`
	CancelDate      string   `json:"cancelDate,omitempty" yaml:"cancelDate,omitempty"`
	BillingSiteID   int      `json:"billingSiteId"        yaml:"billingSiteId"`
	CustomerID      string   `json:"customerId,omitempty" yaml:"customerId,omitempty"`
	Status          int      `json:"status"               yaml:"status"`
	StatusName      string   `json:"statusName"           yaml:"statusName"`
	BillingSiteCode string   `json:"billingSiteCode"      yaml:"billingSiteCode"`
}

// Recurring is the full recurring account detail, including customer,
// vehicles, tags, billing history, and status history.
type Recurring struct {
	ID                         string             `json:"id"                           yaml:"id"`
	IsOnTrial                  bool               `json:"isOnTrial"                    yaml:"isOnTrial"`
	TrialAmount                float64            `json:"trialAmount"                  yaml:"trialAmount"`
	BillingSiteCode            string             `json:"billingSiteCode"              yaml:"billingSiteCode"`
	CreationSiteCode           string             `json:"creationSiteCode"             yaml:"creationSiteCode"`
	NextBillDate               string             `json:"nextBillDate"                 yaml:"nextBillDate"`
	Tags                       []WashbookTag      `json:"tags"                         yaml:"tags"`
	Vehicles                   []WashbookVehicle  `json:"vehicles"                     yaml:"vehicles"`
	LastBillDate               string             `json:"lastBillDate,omitempty"       yaml:"lastBillDate,omitempty"`
	BillingAmount              *float64           `json:"billingAmount,omitempty"      yaml:"billingAmount,omitempty"`
	IsSuspended                bool               `json:"isSuspended"                  yaml:"isSuspended"`
	SuspendedUntil             string             `json:"suspendedUntil,omitempty"     yaml:"suspendedUntil,omitempty"`
	CurrentRecurringStatusName string             `json:"currentRecurringStatusName"   yaml:"currentRecurringStatusName"`
	PlanName                   string             `json:"planName"                     yaml:"planName"`
	Customer                   WashbookCustomer   `json:"customer"                     yaml:"customer"`
	RecurringStatuses          []RecurringStatus  `json:"recurringStatuses"            yaml:"recurringStatuses"`
	RecurringBillings          []RecurringBilling `json:"recurringBillings"            yaml:"recurringBillings"`
	AdditionalTagPrice         *float64           `json:"additionalTagPrice,omitempty" yaml:"additionalTagPrice,omitempty"`
}

// RecurringStatusChange is a status change event from the
// /recurring/account/status-list endpoint. This endpoint is the one part of
// the API that responds with snake_case keys instead of camelCase.
type RecurringStatusChange struct {
	WashbookAccountID string `json:"washbook_account_id" yaml:"washbook_account_id"`
	RecurringID       string `json:"recurring_id"        yaml:"recurring_id"`
	OldStatus         string `json:"old_status"          yaml:"old_status"`
	NewStatus         string `json:"new_status"          yaml:"new_status"`
	StatusDate        string `json:"status_date"         yaml:"status_date"`
	EmployeeName      string `json:"employee_name"       yaml:"employee_name"`
	SiteCode          string `json:"site_code"           yaml:"site_code"`
}

// RecurringModificationEntry is a single modification entry with name, date,
// and optional comment.
type RecurringModificationEntry struct {
	Name    string `json:"name"              yaml:"name"`
	Date    string `json:"date"              yaml:"date"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// RecurringModification is a recurring account with its modification history.
type RecurringModification struct {
	Recurring

	Modifications []RecurringModificationEntry `json:"modifications" yaml:"modifications"`
}

// TransactionTender is a payment tender (cash, credit, etc.) within a
// transaction detail.
type TransactionTender struct {
	Tender                   string  `json:"tender"                             yaml:"tender"`
	TenderSubType            string  `json:"tenderSubType,omitempty"            yaml:"tenderSubType,omitempty"`
	Amount                   float64 `json:"amount"                             yaml:"amount"`
	Change                   float64 `json:"change"                             yaml:"change"`
	Total                    float64 `json:"total"                              yaml:"total"`
	ReferenceNumber          string  `json:"referenceNumber,omitempty"          yaml:"referenceNumber,omitempty"`
	CreditCardLastFour       string  `json:"creditCardLastFour,omitempty"       yaml:"creditCardLastFour,omitempty"`
	CreditCardExpirationDate string  `json:"creditCardExpirationDate,omitempty" yaml:"creditCardExpirationDate,omitempty"`
}

// TransactionItem is a line item within a transaction detail.
type TransactionItem struct {
	Name          string  `json:"name"          yaml:"name"`
	SKU           string  `json:"sku,omitempty" yaml:"sku,omitempty"`
	Department    string  `json:"department"    yaml:"department"`
	Quantity      int     `json:"quantity"      yaml:"quantity"`
	Gross         float64 `json:"gross"         yaml:"gross"`
	Net           float64 `json:"net"           yaml:"net"`
	Discount      float64 `json:"discount"      yaml:"discount"`
	Tax           float64 `json:"tax"           yaml:"tax"`
	AdditionalFee float64 `json:"additionalFee" yaml:"additionalFee"`
	IsVoided      bool    `json:"isVoided"      yaml:"isVoided"`
}

// TransactionDiscount is a discount applied within a transaction detail.
type TransactionDiscount struct {
	DiscountName      string  `json:"discountName"          yaml:"discountName"`
	DiscountSKU       string  `json:"discountSku,omitempty" yaml:"discountSku,omitempty"`
	AppliedToItemName string  `json:"appliedToItemName"     yaml:"appliedToItemName"`
	DiscountAmount    float64 `json:"discountAmount"        yaml:"discountAmount"`
	DiscountCode      string  `json:"discountCode"          yaml:"discountCode"`
}

// TransactionListItem is the summary record returned by the /transaction
// list and by-type endpoints.
type TransactionListItem struct {
	TransNumber int     `json:"transNumber" yaml:"transNumber"`
	TransID     string  `json:"transId"     yaml:"transId"`
	Total       float64 `json:"total"       yaml:"total"`
	Date        string  `json:"date"        yaml:"date"`
}

// TransactionV2ListItem is the enriched summary returned by the
// /transaction/version-2 endpoint, carrying the recurring plan flags the
// stats engine classifies on.
type TransactionV2ListItem struct {
	TransactionListItem

	CustomerID                string `json:"customerId,omitempty"       yaml:"customerId,omitempty"`
	IsRecurringPlanSale       bool   `json:"isRecurringPlanSale"        yaml:"isRecurringPlanSale"`
	IsRecurringPlanRedemption bool   `json:"isRecurringPlanRedemption"  yaml:"isRecurringPlanRedemption"`
	TransactionStatus         string `json:"transactionStatus"          yaml:"transactionStatus"`
}

// Transaction is the full detail returned by the /transaction/{id} endpoint.
type Transaction struct {
	ID                    string                `json:"id"                             yaml:"id"`
	Number                int                   `json:"number"                         yaml:"number"`
	Type                  string                `json:"type"                           yaml:"type"`
	CompleteDate          string                `json:"completeDate"                   yaml:"completeDate"`
	LocationCode          string                `json:"locationCode"                   yaml:"locationCode"`
	SalesDeviceName       string                `json:"salesDeviceName"                yaml:"salesDeviceName"`
	Total                 float64               `json:"total"                          yaml:"total"`
	Tenders               []TransactionTender   `json:"tenders"                        yaml:"tenders"`
	Items                 []TransactionItem     `json:"items"                          yaml:"items"`
	CustomerName          string                `json:"customerName,omitempty"         yaml:"customerName,omitempty"`
	CustomerID            string                `json:"customerId,omitempty"           yaml:"customerId,omitempty"`
	VehicleLicensePlate   string                `json:"vehicleLicensePlate,omitempty"  yaml:"vehicleLicensePlate,omitempty"`
	EmployeeCashier       string                `json:"employeeCashier,omitempty"      yaml:"employeeCashier,omitempty"`
	EmployeeGreeter       string                `json:"employeeGreeter,omitempty"      yaml:"employeeGreeter,omitempty"`
	Discounts             []TransactionDiscount `json:"discount"                       yaml:"discount"`
	IsRecurringPayment    bool                  `json:"isRecurringPayment"             yaml:"isRecurringPayment"`
	IsRecurringRedemption bool                  `json:"isRecurringRedemption"          yaml:"isRecurringRedemption"`
	IsRecurringSale       bool                  `json:"isRecurringSale"                yaml:"isRecurringSale"`
	IsPrepaidRedemption   bool                  `json:"isPrepaidRedemption"            yaml:"isPrepaidRedemption"`
	IsPrepaidSale         bool                  `json:"isPrepaidSale"                  yaml:"isPrepaidSale"`
}

// TransactionJobItem is a record returned by the batch export job, extending
// the full detail with the v2 enrichment fields.
type TransactionJobItem struct {
	Transaction

	IsRecurringPlanSale       *bool  `json:"isRecurringPlanSale,omitempty"       yaml:"isRecurringPlanSale,omitempty"`
	IsRecurringPlanRedemption *bool  `json:"isRecurringPlanRedemption,omitempty" yaml:"isRecurringPlanRedemption,omitempty"`
	TransactionStatus         string `json:"transactionStatus,omitempty"         yaml:"transactionStatus,omitempty"`
}
