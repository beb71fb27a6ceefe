package handler

type CurrentConditionsResponse struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	Wind      float64 `json:"wind"`
	Location  string  `json:"location"`
}

type AlertResponse struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ForecastDayResponse struct {
	Day  string `json:"day"`
	Temp string `json:"temp"`
	Cond string `json:"cond"`
}

type WeatherResponse struct {
	Current          CurrentConditionsResponse `json:"current"`
	Alerts           []AlertResponse           `json:"alerts"`
	SmartTip         string                    `json:"smart_tip"`
	Forecast         []ForecastDayResponse     `json:"forecast"`
	Source           string                    `json:"source"`
	LocationResolved bool                      `json:"location_resolved"`
}

type NewsItemResponse struct {
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Publisher string `json:"publisher"`
	Category  string `json:"category"`
	Time      string `json:"time"`
	Img       string `json:"img"`
	Link      string `json:"link"`
}

type NewsFeedResponse struct {
	News   []NewsItemResponse `json:"news"`
	Query  string             `json:"query"`
	Origin string             `json:"origin"`
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CreateTaskResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type ToggleTaskResponse struct {
	Success bool `json:"success"`
	Status  bool `json:"status"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}

type CropGuideResponse struct {
	NameKey     string   `json:"name_key"`
	DiseaseKeys []string `json:"diseases_keys"`
	CareKey     string   `json:"care_key"`
	Icon        string   `json:"icon"`
}

type PageResponse struct {
	Page      string `json:"page"`
	PageTitle string `json:"page_title,omitempty"`
	AuthType  string `json:"type,omitempty"`
}
