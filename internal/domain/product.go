package domain

import "time"

// Статусы записей каталога.
const (
	StatusActive = "active"
)

// UnitOfMeasure — единица измерения и сумма.
type UnitOfMeasure struct {
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
	Amount   float64 `json:"amount,omitempty" bson:"amount,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

// Tax — налог, привязанный к цене.
type Tax struct {
	Type  string  `json:"type,omitempty" bson:"type,omitempty"`
	Value float64 `json:"value,omitempty" bson:"value,omitempty"`
}

// PopRelationship — ссылка цены на связанный продукт.
type PopRelationship struct {
	ID   string `json:"id,omitempty" bson:"id,omitempty"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
}

// Display — как показывать вложение.
type Display struct {
	Type  string `json:"type,omitempty" bson:"type,omitempty"`
	Value string `json:"value,omitempty" bson:"value,omitempty"`
}

// Attachment — вложение (картинка, ссылка) локализованного описания.
type Attachment struct {
	ID          string    `json:"id,omitempty" bson:"id,omitempty"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	URL         string    `json:"url,omitempty" bson:"url,omitempty"`
	Type        string    `json:"type,omitempty" bson:"type,omitempty"`
	Status      string    `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
	Display     *Display  `json:"display,omitempty" bson:"display,omitempty"`
	RedirectURL string    `json:"redirectUrl,omitempty" bson:"redirectUrl,omitempty"`
}

// SupportingLanguage — локализованное описание продукта, цены или категории.
// Внутри Product хранится только сводка (id, name, languageCode), полная запись публикуется отдельно.
type SupportingLanguage struct {
	ID            string         `json:"id,omitempty" bson:"id,omitempty"`
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	Description   string         `json:"description,omitempty" bson:"description,omitempty"`
	LanguageCode  string         `json:"languageCode,omitempty" bson:"languageCode,omitempty"`
	UnitOfMeasure *UnitOfMeasure `json:"unitOfMeasure,omitempty" bson:"unitOfMeasure,omitempty"`
	Attachment    []Attachment   `json:"attachment,omitempty" bson:"attachment,omitempty"`
	Status        string         `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt     time.Time      `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

// Summary возвращает денормализованную сводку для встраивания в Product.
func (l SupportingLanguage) Summary() SupportingLanguage {
	return SupportingLanguage{ID: l.ID, Name: l.Name, LanguageCode: l.LanguageCode}
}

// Price — цена продукта.
type Price struct {
	ID                 string               `json:"id,omitempty" bson:"id,omitempty"`
	Name               string               `json:"name,omitempty" bson:"name,omitempty"`
	Tax                *Tax                 `json:"tax,omitempty" bson:"tax,omitempty"`
	PopRelationship    []PopRelationship    `json:"popRelationship,omitempty" bson:"popRelationship,omitempty"`
	UnitOfMeasure      *UnitOfMeasure       `json:"unitOfMeasure,omitempty" bson:"unitOfMeasure,omitempty"`
	SupportingLanguage []SupportingLanguage `json:"SupportingLanguage,omitempty" bson:"SupportingLanguage,omitempty"`
	Status             string               `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt          time.Time            `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time            `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

// Category — категория продукта.
type Category struct {
	ID                 string               `json:"id,omitempty" bson:"id,omitempty"`
	Name               string               `json:"name,omitempty" bson:"name,omitempty"`
	Description        string               `json:"description,omitempty" bson:"description,omitempty"`
	SupportingLanguage []SupportingLanguage `json:"SupportingLanguage,omitempty" bson:"SupportingLanguage,omitempty"`
	Status             string               `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt          time.Time            `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time            `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}

// Product — запись каталога. Href не хранится, вычисляется при отдаче по HTTP.
// DeleteDate != nil означает мягкое удаление.
type Product struct {
	ID                 string               `json:"id,omitempty" bson:"id,omitempty"`
	Name               string               `json:"name,omitempty" bson:"name,omitempty"`
	Href               string               `json:"href,omitempty" bson:"-"`
	Price              []Price              `json:"price,omitempty" bson:"price,omitempty"`
	Category           []Category           `json:"category,omitempty" bson:"category,omitempty"`
	Description        string               `json:"description,omitempty" bson:"description,omitempty"`
	Stock              int                  `json:"stock,omitempty" bson:"stock,omitempty"`
	Status             string               `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt          time.Time            `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time            `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
	DeleteDate         *time.Time           `json:"deleteDate,omitempty" bson:"deleteDate,omitempty"`
	SupportingLanguage []SupportingLanguage `json:"SupportingLanguage,omitempty" bson:"SupportingLanguage,omitempty"`
}

// Batch — одна пачка сгенерированных записей: продукты и полные локализации к ним.
type Batch struct {
	Products  []Product
	Languages []SupportingLanguage
}

// ProductPage — результат листинга: не больше MaxPageSize продуктов и полное число совпадений.
type ProductPage struct {
	Products []Product
	Count    int64
	Elapsed  time.Duration
}

// MaxPageSize — сколько продуктов отдаёт листинг за один запрос.
const MaxPageSize = 100
