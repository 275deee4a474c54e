package model

type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

type Book struct {
	ID            string       `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	Author        string       `json:"author" yaml:"author"`
	Genre         string       `json:"genre" yaml:"genre"`
	Description   string       `json:"description" yaml:"description"`
	Price         float64      `json:"price" yaml:"price"`
	OriginalPrice *float64     `json:"originalPrice,omitempty" yaml:"original_price"`
	Image         string       `json:"image" yaml:"image"`
	Rating        float64      `json:"rating" yaml:"rating"`
	ReviewCount   int          `json:"reviewCount" yaml:"review_count"`
	ISBN          string       `json:"isbn" yaml:"isbn"`
	PublishedDate string       `json:"publishedDate" yaml:"published_date"`
	Pages         int          `json:"pages" yaml:"pages"`
	Availability  Availability `json:"availability" yaml:"availability"`
	Featured      bool         `json:"featured,omitempty" yaml:"featured"`
	Bestseller    bool         `json:"bestseller,omitempty" yaml:"bestseller"`
	SellerID      string       `json:"sellerId" yaml:"seller_id"`
	SellerName    string       `json:"sellerName" yaml:"seller_name"`
	Stock         int          `json:"stock" yaml:"stock"`
	Reviews       []Review     `json:"reviews,omitempty" yaml:"reviews"`
}

type Review struct {
	ID         string `json:"id" yaml:"id"`
	UserID     string `json:"userId" yaml:"user_id"`
	UserName   string `json:"userName" yaml:"user_name"`
	UserAvatar string `json:"userAvatar" yaml:"user_avatar"`
	BookID     string `json:"bookId" yaml:"book_id"`
	Rating     int    `json:"rating" yaml:"rating"`
	Comment    string `json:"comment" yaml:"comment"`
	Date       string `json:"date" yaml:"date"`
}
