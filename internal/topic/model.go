package topic

// Timeframes accepted by the trending endpoint.
var Timeframes = []string{"day", "week", "month"}

// Topic is one trending entry for a timeframe. Position fixes the stored
// order the list is served in.
type Topic struct {
	Tag       string `gorm:"primaryKey;size:120" json:"tag"`
	Timeframe string `gorm:"primaryKey;size:16" json:"-"`
	PostCount int64  `json:"postCount"`
	Trend     string `gorm:"size:16" json:"trend"`
	Position  int    `gorm:"index" json:"-"`
}
