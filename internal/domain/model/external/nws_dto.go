package external

// NWS (weather.gov) API response structures. The API serves GeoJSON-style
// envelopes; quantities carry a WMO unit code next to the value.

type NWSPointsResponse struct {
	Properties NWSPointsProperties `json:"properties"`
}

type NWSPointsProperties struct {
	GridID              string `json:"gridId"`
	GridX               int    `json:"gridX"`
	GridY               int    `json:"gridY"`
	TimeZone            string `json:"timeZone"`
	ObservationStations string `json:"observationStations"`
}

type NWSStationsResponse struct {
	Features []NWSStationFeature `json:"features"`
}

type NWSStationFeature struct {
	Properties NWSStationProperties `json:"properties"`
}

type NWSStationProperties struct {
	StationIdentifier string `json:"stationIdentifier"`
	Name              string `json:"name"`
}

type NWSForecastResponse struct {
	Properties NWSForecastProperties `json:"properties"`
}

type NWSForecastProperties struct {
	Periods []NWSForecastPeriod `json:"periods"`
}

type NWSForecastPeriod struct {
	StartTime                  string             `json:"startTime"`
	EndTime                    string             `json:"endTime"`
	IsDaytime                  bool               `json:"isDaytime"`
	Temperature                *float64           `json:"temperature"`
	TemperatureUnit            string             `json:"temperatureUnit"`
	WindSpeed                  string             `json:"windSpeed"`
	WindDirection              string             `json:"windDirection"`
	ShortForecast              string             `json:"shortForecast"`
	Icon                       string             `json:"icon"`
	ProbabilityOfPrecipitation *NWSQuantity       `json:"probabilityOfPrecipitation"`
	RelativeHumidity           *NWSQuantity       `json:"relativeHumidity"`
	Dewpoint                   *NWSQuantity       `json:"dewpoint"`
}

type NWSQuantity struct {
	UnitCode string   `json:"unitCode"`
	Value    *float64 `json:"value"`
}

type NWSObservationResponse struct {
	Properties NWSObservationProperties `json:"properties"`
}

type NWSObservationProperties struct {
	Timestamp          string       `json:"timestamp"`
	TextDescription    string       `json:"textDescription"`
	Temperature        *NWSQuantity `json:"temperature"`
	Dewpoint           *NWSQuantity `json:"dewpoint"`
	WindDirection      *NWSQuantity `json:"windDirection"`
	WindSpeed          *NWSQuantity `json:"windSpeed"`
	WindGust           *NWSQuantity `json:"windGust"`
	BarometricPressure *NWSQuantity `json:"barometricPressure"`
	RelativeHumidity   *NWSQuantity `json:"relativeHumidity"`
	Visibility         *NWSQuantity `json:"visibility"`
	WindChill          *NWSQuantity `json:"windChill"`
	HeatIndex          *NWSQuantity `json:"heatIndex"`
}

type NWSAlertsResponse struct {
	Features []NWSAlertFeature `json:"features"`
}

type NWSAlertFeature struct {
	Properties NWSAlertProperties `json:"properties"`
}

type NWSAlertProperties struct {
	ID          string  `json:"id"`
	Event       string  `json:"event"`
	Headline    *string `json:"headline"`
	Description *string `json:"description"`
	Instruction *string `json:"instruction"`
	Severity    string  `json:"severity"`
	Onset       *string `json:"onset"`
	Ends        *string `json:"ends"`
	SenderName  string  `json:"senderName"`
}

type NWSErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
