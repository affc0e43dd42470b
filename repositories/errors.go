package repositories

import "errors"

// ErrNotFound gorm.ErrRecordNotFound'ın dış katmanlara sızmaması için
// repository katmanının ortak "kayıt bulunamadı" hatasıdır.
var ErrNotFound = errors.New("kayıt bulunamadı")
