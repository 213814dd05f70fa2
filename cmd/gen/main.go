package main

import (
	"iothub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.PushTokenModel{},
		model.DeviceModel{},
		model.SubDeviceModel{},
		model.AccessGrantModel{},
		model.ConnectionModel{},
		model.DeviceParameterModel{},
		model.SubDeviceParameterModel{},
		model.DeviceSettingModel{},
		model.SystemParameterModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
