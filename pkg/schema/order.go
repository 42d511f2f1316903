package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "order_date", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "customer", "type": {
			"type": "record",
			"name": "customer",
			"fields": [
				{"name": "name", "type": "string"},
				{"name": "email", "type": "string"},
				{"name": "phone", "type": "string"}
			]
		}},
		{"name": "shipping_address", "type": {
			"type": "record",
			"name": "shipping_address",
			"fields": [
				{"name": "street", "type": "string"},
				{"name": "apartment", "type": "string"},
				{"name": "city", "type": "string"},
				{"name": "state", "type": "string"},
				{"name": "zip", "type": "string"},
				{"name": "country", "type": "string"}
			]
		}},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_type", "type": "string"},
					{"name": "product_name", "type": "string"},
					{"name": "size", "type": "string"},
					{"name": "shape", "type": "string"},
					{"name": "quantity", "type": "long"},
					{"name": "unit_price", "type": "double"},
					{"name": "total_price", "type": "double"},
					{"name": "artwork_url", "type": "string"},
					{"name": "preview_url", "type": "string"},
					{"name": "instructions", "type": "string"}
				]
			}
		}},
		{"name": "subtotal", "type": "double"},
		{"name": "shipping", "type": "double"},
		{"name": "total", "type": "double"},
		{"name": "payment_info", "type": "string"}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID         string        `avro:"order_id"`
		OrderDate       string        `avro:"order_date"`
		Status          string        `avro:"status"`
		Customer        CustomerV1    `avro:"customer"`
		ShippingAddress AddressV1     `avro:"shipping_address"`
		Items           []OrderItemV1 `avro:"items"`
		Subtotal        float64       `avro:"subtotal"`
		Shipping        float64       `avro:"shipping"`
		Total           float64       `avro:"total"`
		PaymentInfo     string        `avro:"payment_info"`
	}

	CustomerV1 struct {
		Name  string `avro:"name"`
		Email string `avro:"email"`
		Phone string `avro:"phone"`
	}

	AddressV1 struct {
		Street    string `avro:"street"`
		Apartment string `avro:"apartment"`
		City      string `avro:"city"`
		State     string `avro:"state"`
		Zip       string `avro:"zip"`
		Country   string `avro:"country"`
	}

	OrderItemV1 struct {
		ProductType  string  `avro:"product_type"`
		ProductName  string  `avro:"product_name"`
		Size         string  `avro:"size"`
		Shape        string  `avro:"shape"`
		Quantity     int     `avro:"quantity"`
		UnitPrice    float64 `avro:"unit_price"`
		TotalPrice   float64 `avro:"total_price"`
		ArtworkURL   string  `avro:"artwork_url"`
		PreviewURL   string  `avro:"preview_url"`
		Instructions string  `avro:"instructions"`
	}
)
