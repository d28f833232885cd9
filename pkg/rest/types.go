// Транспортные модели HTTP API. Поля совпадают с тем, что ожидает фронтенд.
package rest

type SearchRequest struct {
	Query string `json:"query" validate:"required,max=4000"`
}

type SortRequest struct {
	SortBy string `json:"sortBy" validate:"required"`
}

// Card одна карточка результата.
type Card struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Percentage   int    `json:"percentage"`
	Grade        string `json:"grade"`
	Checked      bool   `json:"checked"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"priceDisplay"`
}

type Document struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

// View снимок состояния страницы. Cards отсортированы по SortBy.
type View struct {
	SessionID   string   `json:"sessionId"`
	Query       string   `json:"query"`
	Phase       string   `json:"phase"`
	SortBy      string   `json:"sortBy"`
	Viewed      int      `json:"viewed"`
	ViewedLabel string   `json:"viewedLabel"`
	Remaining   int      `json:"remaining"`
	AnyChecked  bool     `json:"anyChecked"`
	Cards       []Card   `json:"cards"`
	Document    Document `json:"document"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
