package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json usa jsoniter com compatibilidade total com a biblioteca padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary
