package model

type ScaleGroup struct {
	Id   int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(64);not null;uniqueIndex"`
}

func (ScaleGroup) TableName() string {
	return "scale_groups"
}

type Scale struct {
	Name     string      `gorm:"type:varchar(64) COLLATE \"C\";primaryKey"`
	RootNote string      `gorm:"column:root_note;type:varchar(2);primaryKey"`
	GroupId  int         `gorm:"column:group_id;not null;index"`
	Group    ScaleGroup  `gorm:"foreignKey:GroupId"`
	Notes    []ScaleNote `gorm:"foreignKey:ScaleName,RootNote;references:Name,RootNote;constraint:OnDelete:CASCADE"`
}

func (Scale) TableName() string {
	return "scales"
}

type ScaleNote struct {
	ScaleName string `gorm:"column:scale_name;type:varchar(64) COLLATE \"C\";primaryKey"`
	RootNote  string `gorm:"column:root_note;type:varchar(2);primaryKey"`
	Note      string `gorm:"type:varchar(2);primaryKey;index"`
}

func (ScaleNote) TableName() string {
	return "scale_has_note"
}

// ScaleAggregate is the scan target of grouped scale queries.
type ScaleAggregate struct {
	Name      string
	RootNote  string
	GroupId   int
	GroupName string
	Notes     string
}
