// Package docs registra el documento OpenAPI servido en /swagger/*.
// Se mantiene a mano junto con las anotaciones godoc de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/animals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Consultar animais",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Substring de la raça",
                        "name": "raca",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Especie exacta",
                        "name": "especie",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Cadastrar animal",
                "parameters": [
                    {
                        "description": "Datos del animal",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/animals.errorResponse"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Detalle de animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del animal",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/animals.errorResponse"
                        }
                    }
                }
            }
        },
        "/bovinos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Consultar bovinos",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Substring de la raça",
                        "name": "raca",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Substring del brinco",
                        "name": "brinco",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status exacto",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.bovinoResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Cadastrar bovino",
                "parameters": [
                    {
                        "description": "Datos del bovino",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bovinos.createBovinoRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/bovinos.bovinoResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    }
                }
            }
        },
        "/bovinos/activities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Atividades recentes",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Por defecto 50, máximo 200",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.Activity"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Registrar atividade",
                "parameters": [
                    {
                        "description": "Atividade; occurredAt en RFC3339",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bovinos.activityRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/bovinos.Activity"
                        }
                    },
                    "400": {
                        "description": "invalid json / occurredAt inválido / reglas de negocio",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    },
                    "404": {
                        "description": "bovino not found",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    }
                }
            }
        },
        "/bovinos/alerts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Listar alertas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.Alert"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Crear alerta manual",
                "parameters": [
                    {
                        "description": "Alerta",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bovinos.alertRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/bovinos.Alert"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    }
                }
            }
        },
        "/bovinos/alerts/refresh": {
            "post": {
                "description": "Reemplaza las alertas de barrida (vacunación, peso, tratamiento); las manuales se mantienen.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Recalcular alertas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.Alert"
                            }
                        }
                    }
                }
            }
        },
        "/bovinos/breeds": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Distribución por raça",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.BreedCount"
                            }
                        }
                    }
                }
            }
        },
        "/bovinos/growth": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Crescimento do rebanho",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Cantidad de meses",
                        "name": "months",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bovinos.GrowthPoint"
                            }
                        }
                    },
                    "400": {
                        "description": "months inválido",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    }
                }
            }
        },
        "/bovinos/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Indicadores do rebanho",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bovinos.HerdStats"
                        }
                    }
                }
            }
        },
        "/bovinos/{bovinoID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bovinos"
                ],
                "summary": "Detalle de bovino",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del bovino",
                        "name": "bovinoID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bovinos.bovinoResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/bovinos.errorResponse"
                        }
                    }
                }
            }
        },
        "/breeds": {
            "get": {
                "description": "Razas sugeridas para el formulario de cadastro. Especie desconocida => lista vacía.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classifications"
                ],
                "summary": "Sugestões de raça",
                "parameters": [
                    {
                        "type": "string",
                        "description": "canino, felino, bovino, equino, suino u ovino",
                        "name": "especie",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/classifications": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classifications"
                ],
                "summary": "Listar classificações",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/classifications.recordResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Guarda un resultado devuelto por /classifications/classify.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classifications"
                ],
                "summary": "Salvar classificação",
                "parameters": [
                    {
                        "description": "Resultado a guardar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/classifier.Result"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/classifications.recordResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / resultado inválido",
                        "schema": {
                            "$ref": "#/definitions/classifications.errorResponse"
                        }
                    }
                }
            }
        },
        "/classifications/classify": {
            "post": {
                "description": "Puntúa las razas de la especie por porte, pelo y cor. Bajo 50% devuelve \"SRD (Sem Raça Definida)\" con 75 y sin alternativas. No persiste.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classifications"
                ],
                "summary": "Clasificar raza",
                "parameters": [
                    {
                        "description": "Características observadas",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/classifications.classifyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/classifier.Result"
                        }
                    },
                    "400": {
                        "description": "invalid json / campos obrigatórios",
                        "schema": {
                            "$ref": "#/definitions/classifications.errorResponse"
                        }
                    }
                }
            }
        },
        "/classifications/species": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classifications"
                ],
                "summary": "Especies del clasificador",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Estatísticas do cadastro",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Stats"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.Summary": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "distinctBreeds": {
                    "type": "integer"
                },
                "averageWeight": {
                    "type": "number"
                },
                "vaccinated": {
                    "type": "integer"
                },
                "bySpecies": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "byCategory": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "byBodyCondition": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "especie": {
                    "type": "string"
                },
                "raca": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "cor": {
                    "type": "string"
                },
                "idade": {
                    "type": "integer"
                },
                "peso": {
                    "type": "number"
                },
                "vacinado": {
                    "type": "string",
                    "enum": [
                        "sim",
                        "nao"
                    ]
                },
                "proprietario": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "observacoes": {
                    "type": "string"
                },
                "imc": {
                    "type": "string",
                    "enum": [
                        "Abaixo do peso",
                        "Normal",
                        "Acima do peso"
                    ]
                },
                "categoria": {
                    "type": "string",
                    "enum": [
                        "Filhote",
                        "Adulto",
                        "Idoso"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "idadeDescricao": {
                    "type": "string"
                },
                "warning": {
                    "type": "string"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "nome": {
                    "type": "string"
                },
                "especie": {
                    "type": "string"
                },
                "raca": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "idade": {
                    "type": "integer"
                },
                "peso": {
                    "type": "number"
                },
                "cor": {
                    "type": "string"
                },
                "vacinado": {
                    "type": "string",
                    "enum": [
                        "sim",
                        "nao"
                    ]
                },
                "proprietario": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "observacoes": {
                    "type": "string"
                }
            },
            "required": [
                "nome",
                "especie",
                "idade",
                "peso",
                "telefone"
            ]
        },
        "animals.errorResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "bovinos.Activity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "vaccination",
                        "weight",
                        "birth",
                        "treatment",
                        "note"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "bovinoId": {
                    "type": "string"
                },
                "occurredAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "recordedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "bovinos.Alert": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "warning",
                        "error",
                        "info"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "bovinoId": {
                    "type": "string"
                },
                "source": {
                    "type": "string",
                    "enum": [
                        "manual",
                        "sweep"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "bovinos.BreedCount": {
            "type": "object",
            "properties": {
                "breed": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "bovinos.GrowthPoint": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "bovinos.HerdStats": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "saudaveis": {
                    "type": "integer"
                },
                "reproducao": {
                    "type": "integer"
                },
                "pesoMedio": {
                    "type": "integer"
                }
            }
        },
        "bovinos.activityRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "vaccination",
                        "weight",
                        "birth",
                        "treatment",
                        "note"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "bovinoId": {
                    "type": "string"
                },
                "occurredAt": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "title"
            ]
        },
        "bovinos.alertRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "warning",
                        "error",
                        "info"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "bovinoId": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "title"
            ]
        },
        "bovinos.bovinoResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "especie": {
                    "type": "string"
                },
                "raca": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "cor": {
                    "type": "string"
                },
                "idade": {
                    "type": "integer"
                },
                "peso": {
                    "type": "number"
                },
                "vacinado": {
                    "type": "string",
                    "enum": [
                        "sim",
                        "nao"
                    ]
                },
                "proprietario": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "observacoes": {
                    "type": "string"
                },
                "imc": {
                    "type": "string",
                    "enum": [
                        "Abaixo do peso",
                        "Normal",
                        "Acima do peso"
                    ]
                },
                "categoria": {
                    "type": "string",
                    "enum": [
                        "Filhote",
                        "Adulto",
                        "Idoso"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "brinco": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "saudavel",
                        "tratamento",
                        "reproducao",
                        "observacao"
                    ]
                },
                "localizacao": {
                    "type": "string"
                },
                "dataUltimaVacinacao": {
                    "type": "string",
                    "format": "date-time"
                },
                "dataNascimento": {
                    "type": "string",
                    "format": "date-time"
                },
                "idadeDescricao": {
                    "type": "string"
                },
                "warning": {
                    "type": "string"
                }
            }
        },
        "bovinos.createBovinoRequest": {
            "type": "object",
            "properties": {
                "nome": {
                    "type": "string"
                },
                "brinco": {
                    "type": "string"
                },
                "raca": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "idade": {
                    "type": "integer"
                },
                "peso": {
                    "type": "number"
                },
                "cor": {
                    "type": "string"
                },
                "vacinado": {
                    "type": "string"
                },
                "proprietario": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "observacoes": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "saudavel",
                        "tratamento",
                        "reproducao",
                        "observacao"
                    ]
                },
                "localizacao": {
                    "type": "string"
                },
                "dataUltimaVacinacao": {
                    "type": "string"
                },
                "dataNascimento": {
                    "type": "string"
                }
            },
            "required": [
                "nome",
                "brinco",
                "peso"
            ]
        },
        "bovinos.errorResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "classifications.classifyRequest": {
            "type": "object",
            "properties": {
                "especie": {
                    "type": "string"
                },
                "porte": {
                    "type": "string",
                    "enum": [
                        "pequeno",
                        "medio",
                        "grande"
                    ]
                },
                "pelo": {
                    "type": "string",
                    "enum": [
                        "curto",
                        "medio",
                        "longo"
                    ]
                },
                "cor": {
                    "type": "string"
                }
            },
            "required": [
                "especie",
                "porte",
                "pelo",
                "cor"
            ]
        },
        "classifications.errorResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "classifications.recordResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "confidence": {
                    "type": "integer"
                },
                "characteristics": {
                    "$ref": "#/definitions/classifier.Characteristics"
                },
                "alternatives": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/classifier.Match"
                    }
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "warning": {
                    "type": "string"
                }
            }
        },
        "classifier.Characteristics": {
            "type": "object",
            "properties": {
                "especie": {
                    "type": "string"
                },
                "porte": {
                    "type": "string"
                },
                "pelo": {
                    "type": "string"
                },
                "cor": {
                    "type": "string"
                }
            }
        },
        "classifier.Match": {
            "type": "object",
            "properties": {
                "breed": {
                    "type": "string"
                },
                "confidence": {
                    "type": "integer"
                },
                "score": {
                    "type": "number"
                },
                "maxScore": {
                    "type": "number"
                }
            }
        },
        "classifier.Result": {
            "type": "object",
            "properties": {
                "primary": {
                    "$ref": "#/definitions/classifier.Match"
                },
                "alternatives": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/classifier.Match"
                    }
                },
                "characteristics": {
                    "$ref": "#/definitions/classifier.Characteristics"
                }
            }
        },
        "dashboard.Stats": {
            "type": "object",
            "properties": {
                "totalAnimals": {
                    "type": "integer"
                },
                "totalBreeds": {
                    "type": "integer"
                },
                "totalClassifications": {
                    "type": "integer"
                },
                "summary": {
                    "$ref": "#/definitions/animals.Summary"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Animal Registry API",
	Description:      "Cadastro de animais, classificação de raça e painel do rebanho bovino.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
