// Package docs registers the OpenAPI description served at /swagger.
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
        "/signup": {
            "post": {
                "tags": [
                    "User"
                ],
                "summary": "회원가입 (Signup)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SignupRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SignupResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "User"
                ],
                "summary": "로그인 (Login)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.LoginResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "Operations"
                ],
                "summary": "헬스 체크",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/profile": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "프로필 조회 (Profile)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Profile"
                ],
                "summary": "온보딩 / 프로필 수정",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UserProfile"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/onboarding-status": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "온보딩 여부 확인",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.OnboardingStatusResponse"
                        }
                    }
                }
            }
        },
        "/api/insights": {
            "get": {
                "tags": [
                    "Insights"
                ],
                "summary": "산업 인사이트 조회",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.IndustryInsight"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "tags": [
                    "Insights"
                ],
                "summary": "대시보드",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Dashboard"
                        }
                    }
                }
            }
        },
        "/api/history": {
            "get": {
                "tags": [
                    "History"
                ],
                "summary": "모의 면접 기록 조회",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HistoryResponse"
                        }
                    }
                }
            }
        },
        "/api/history/{id}": {
            "get": {
                "tags": [
                    "History"
                ],
                "summary": "모의 면접 기록 단건 조회",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "기록 ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.InterviewRecord"
                        }
                    },
                    "404": {
                        "description": "기록 없음",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/history/audio/{filename}": {
            "get": {
                "tags": [
                    "History"
                ],
                "summary": "면접 녹음 스트리밍",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "audio/mpeg"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "오디오 파일명",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "JWT 토큰",
                        "name": "token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "오디오 바이너리 데이터",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/mock-interview/generate-questions": {
            "post": {
                "tags": [
                    "Mock Interview"
                ],
                "summary": "면접 질문 생성",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GenerateQuestionsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenerateQuestionsResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/mock-interview/question-audio": {
            "post": {
                "tags": [
                    "Mock Interview"
                ],
                "summary": "질문 음성 합성 (TTS)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "audio/mpeg"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.QuestionAudioRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "mp3",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/mock-interview/analyze-answer": {
            "post": {
                "tags": [
                    "Mock Interview"
                ],
                "summary": "답변 분석",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "file",
                        "name": "audio",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "question",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "jobRole",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "transcript",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "name": "sessionId",
                        "in": "formData"
                    },
                    {
                        "type": "integer",
                        "name": "questionId",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.AnswerAnalysis"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/mock-interview/final-analysis": {
            "post": {
                "tags": [
                    "Mock Interview"
                ],
                "summary": "최종 면접 분석",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.FinalAnalysisRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.FinalAnalysisResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/cv-analyser": {
            "post": {
                "tags": [
                    "Tools"
                ],
                "summary": "이력서 분석",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "file",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "jobTitle",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CVAnalysis"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/roadmap": {
            "post": {
                "tags": [
                    "Tools"
                ],
                "summary": "커리어 로드맵 생성",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RoadmapRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.RoadmapResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/chat": {
            "post": {
                "tags": [
                    "Tools"
                ],
                "summary": "커리어 상담 챗봇",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ChatResponse"
                        }
                    }
                }
            }
        },
        "/ws/interview/transcribe": {
            "get": {
                "tags": [
                    "WebSocket (Interview)"
                ],
                "summary": "실시간 답변 전사 WebSocket 연결",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "token",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/admin/insights/refresh": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "산업 인사이트 강제 갱신 (관리자)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "name": "X-Admin-Key",
                        "in": "header",
                        "required": true
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handler.RefreshRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.RefreshResponse"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.SignupResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "handler.OnboardingStatusResponse": {
            "type": "object",
            "properties": {
                "isOnboarded": {
                    "type": "boolean"
                }
            }
        },
        "handler.HistoryResponse": {
            "type": "object",
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.InterviewRecord"
                    }
                }
            }
        },
        "handler.GenerateQuestionsRequest": {
            "type": "object",
            "properties": {
                "jobRole": {
                    "type": "string"
                }
            }
        },
        "handler.GenerateQuestionsResponse": {
            "type": "object",
            "properties": {
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.InterviewQuestion"
                    }
                },
                "jobRole": {
                    "type": "string"
                },
                "isValid": {
                    "type": "boolean"
                },
                "fallback": {
                    "type": "boolean"
                },
                "sessionId": {
                    "type": "string"
                }
            }
        },
        "handler.QuestionAudioRequest": {
            "type": "object",
            "properties": {
                "question": {
                    "type": "string"
                }
            }
        },
        "handler.FinalAnalysisRequest": {
            "type": "object",
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "wpm": {
                                "type": "number"
                            },
                            "pauseCount": {
                                "type": "number"
                            },
                            "fillerCount": {
                                "type": "number"
                            },
                            "score": {
                                "type": "number"
                            },
                            "confidence": {
                                "type": "number"
                            },
                            "justification": {
                                "type": "string"
                            }
                        }
                    }
                },
                "jobRole": {
                    "type": "string"
                },
                "sessionId": {
                    "type": "string"
                }
            }
        },
        "handler.FinalAnalysisResponse": {
            "type": "object",
            "properties": {
                "analysis": {
                    "type": "string"
                },
                "metrics": {
                    "$ref": "#/definitions/models.InterviewMetrics"
                },
                "fallback": {
                    "type": "boolean"
                },
                "recordId": {
                    "type": "string"
                },
                "audioFile": {
                    "type": "string"
                }
            }
        },
        "handler.RoadmapRequest": {
            "type": "object",
            "properties": {
                "career": {
                    "type": "string"
                }
            }
        },
        "handler.RoadmapResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "data": {
                    "$ref": "#/definitions/models.Roadmap"
                },
                "fallback": {
                    "type": "boolean"
                }
            }
        },
        "handler.ChatRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.ChatResponse": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.RefreshRequest": {
            "type": "object",
            "properties": {
                "industries": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.RefreshResponse": {
            "type": "object",
            "properties": {
                "refreshed": {
                    "type": "integer"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "experience": {
                    "type": "integer"
                },
                "bio": {
                    "type": "string"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.UserProfile": {
            "type": "object",
            "properties": {
                "industry": {
                    "type": "string"
                },
                "experience": {
                    "type": "integer"
                },
                "bio": {
                    "type": "string"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.SalaryRange": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string"
                },
                "min": {
                    "type": "number"
                },
                "max": {
                    "type": "number"
                },
                "median": {
                    "type": "number"
                },
                "location": {
                    "type": "string"
                }
            }
        },
        "models.IndustryInsight": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "salaryRanges": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SalaryRange"
                    }
                },
                "growthRate": {
                    "type": "number"
                },
                "demandLevel": {
                    "type": "string"
                },
                "topSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "marketOutlook": {
                    "type": "string"
                },
                "keyTrends": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "recommendedSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lastUpdated": {
                    "type": "string"
                },
                "nextUpdate": {
                    "type": "string"
                }
            }
        },
        "models.Recommendation": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                }
            }
        },
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "interviewsCompleted": {
                    "type": "integer"
                },
                "avgInterviewScore": {
                    "type": "number"
                },
                "lastInterviewAt": {
                    "type": "string"
                }
            }
        },
        "models.Dashboard": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/models.User"
                },
                "insight": {
                    "$ref": "#/definitions/models.IndustryInsight"
                },
                "stats": {
                    "$ref": "#/definitions/models.DashboardStats"
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Recommendation"
                    }
                }
            }
        },
        "models.InterviewQuestion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "category": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "timeLimit": {
                    "type": "integer"
                }
            }
        },
        "models.InterviewMetrics": {
            "type": "object",
            "properties": {
                "avgWpm": {
                    "type": "integer"
                },
                "totalPauses": {
                    "type": "integer"
                },
                "totalFillers": {
                    "type": "integer"
                },
                "avgContentScore": {
                    "type": "number"
                },
                "avgConfidence": {
                    "type": "integer"
                },
                "questionsAnswered": {
                    "type": "integer"
                }
            }
        },
        "models.AnswerAnalysis": {
            "type": "object",
            "properties": {
                "transcript": {
                    "type": "string"
                },
                "wpm": {
                    "type": "integer"
                },
                "pauseCount": {
                    "type": "integer"
                },
                "fillerCount": {
                    "type": "integer"
                },
                "confidence": {
                    "type": "number"
                },
                "duration": {
                    "type": "number"
                },
                "score": {
                    "type": "integer"
                },
                "justification": {
                    "type": "string"
                },
                "questionId": {
                    "type": "integer"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.InterviewRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "sessionId": {
                    "type": "string"
                },
                "jobRole": {
                    "type": "string"
                },
                "metrics": {
                    "$ref": "#/definitions/models.InterviewMetrics"
                },
                "analysis": {
                    "type": "string"
                },
                "audioFile": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "models.CVAnalysis": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "analysis": {
                    "type": "string"
                },
                "fileName": {
                    "type": "string"
                },
                "fileSize": {
                    "type": "integer"
                },
                "jobTitle": {
                    "type": "string"
                }
            }
        },
        "models.RoadmapStage": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.Roadmap": {
            "type": "object",
            "properties": {
                "career": {
                    "type": "string"
                },
                "roadmap": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RoadmapStage"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pravartak-AI Career Coaching API",
	Description:      "Mock interviews, CV analysis, career roadmaps, counselling chat and industry insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
