package i18n

// messages 各语言文案目录
var messages = map[string]map[string]string{
	"en": {
		"error.bad_request":                  "Invalid request",
		"error.internal":                     "Internal server error",
		"error.save_failed":                  "Failed to save data",
		"error.not_found":                    "Resource not found",
		"error.unauthorized":                 "Unauthorized",
		"error.forbidden":                    "Forbidden",
		"error.auth_header_missing":          "Authorization header missing",
		"error.auth_header_invalid":          "Authorization header invalid",
		"error.token_invalid":                "Invalid or expired token",
		"error.token_revoked":                "Token has been revoked",
		"error.jwt_secret_missing":           "JWT secret not configured",
		"error.user_disabled":                "Account is disabled",
		"error.user_not_found":               "User not found",
		"error.login_failed":                 "Invalid credentials",
		"error.password_old_invalid":         "Current password is incorrect",
		"error.password_weak":                "Password is too weak",
		"error.password_min_length":          "Password must have at least %d characters",
		"error.password_require_upper":       "Password must contain an uppercase letter",
		"error.password_require_lower":       "Password must contain a lowercase letter",
		"error.password_require_number":      "Password must contain a digit",
		"error.password_require_special":     "Password must contain a special character",
		"error.email_taken":                  "Email is already registered",
		"error.captcha_required":             "Captcha is required",
		"error.captcha_invalid":              "Captcha verification failed",
		"error.captcha_verify_failed":        "Could not verify captcha",
		"error.captcha_generate_failed":      "Could not generate captcha",
		"error.rate_limited":                 "Too many attempts, try again later",
		"error.rate_limit_unavailable":       "Rate limiter unavailable",
		"error.login_invalid":                "Invalid email or password",
		"error.login_too_many":               "Too many login attempts, try again later",
		"error.register_failed":              "Registration failed",
		"error.old_password_invalid":         "Current password is incorrect",
		"error.password_change_failed":       "Failed to change password",
		"error.profile_update_failed":        "Failed to update profile",
		"error.user_fetch_failed":            "Failed to load account",
		"error.user_update_failed":           "Failed to update account",
		"error.customer_id_invalid":          "Customer identity missing",
		"error.customer_id_type_invalid":     "Customer identity malformed",
		"error.admin_id_invalid":             "Admin identity missing",
		"error.admin_id_type_invalid":        "Admin identity malformed",
		"error.admin_not_found":              "Admin not found",
		"error.admin_fetch_failed":           "Failed to load admins",
		"error.admin_save_failed":            "Failed to save admin",
		"error.admin_username_taken":         "Username is already taken",
		"error.admin_delete_self":            "Cannot delete your own account",
		"error.admin_delete_super":           "Cannot delete a super admin",
		"error.admin_delete_failed":          "Failed to delete admin",
		"error.authz_fetch_failed":           "Failed to load permissions",
		"error.authz_role_invalid":           "Role name is invalid",
		"error.authz_policy_invalid":         "Permission rule is invalid",
		"error.book_not_found":               "Book not found",
		"error.book_inactive":                "Book is not available for sale",
		"error.book_fetch_failed":            "Failed to load books",
		"error.book_save_failed":             "Failed to save book",
		"error.book_isbn_taken":              "A book with this ISBN already exists",
		"error.book_status_invalid":          "Book status is invalid",
		"error.out_of_stock":                 "Not enough units in stock",
		"error.cart_empty":                   "Cart is empty",
		"error.cart_line_not_found":          "Item is not in the cart",
		"error.cart_update_failed":           "Failed to update cart",
		"error.coupon_invalid":               "Coupon is not valid",
		"error.coupon_expired":               "Coupon has expired",
		"error.coupon_used":                  "Coupon has already been used",
		"error.coupon_not_found":             "Coupon not found",
		"error.coupon_used_immutable":        "A used coupon can no longer be changed",
		"error.coupon_input_invalid":         "Coupon data is invalid",
		"error.coupon_fetch_failed":          "Failed to load coupons",
		"error.coupon_save_failed":           "Failed to save coupon",
		"error.order_not_found":              "Order not found",
		"error.order_quote_failed":           "Failed to quote the order",
		"error.order_create_failed":          "Failed to place the order",
		"error.order_fetch_failed":           "Failed to load orders",
		"error.order_cancel_failed":          "Failed to cancel the order",
		"error.order_update_failed":          "Failed to update the order",
		"error.order_status_invalid":         "Order status change not allowed",
		"error.order_transition_illegal":     "Order cannot move from %s to %s",
		"error.address_not_found":            "Address not found",
		"error.address_fetch_failed":         "Failed to load addresses",
		"error.address_save_failed":          "Failed to save address",
		"error.address_delete_failed":        "Failed to delete address",
		"error.card_not_found":               "Card not found",
		"error.card_invalid":                 "Card data is invalid",
		"error.card_fetch_failed":            "Failed to load cards",
		"error.card_save_failed":             "Failed to save card",
		"error.card_delete_failed":           "Failed to delete card",
		"error.brand_not_found":              "Card brand not found",
		"error.brand_fetch_failed":           "Failed to load card brands",
		"error.brand_save_failed":            "Failed to save card brand",
		"error.brand_delete_failed":          "Failed to delete card brand",
		"error.allocation_amount":            "Each payment amount must be greater than zero",
		"error.allocation_amount_invalid":    "Each payment amount must be greater than zero",
		"error.allocation_minimum":           "Each card must pay at least %s when splitting across cards",
		"error.allocation_minimum_short":     "A card payment is below the per-card minimum",
		"error.allocation_mismatch":          "Payment amounts do not add up to the order total",
		"error.allocation_total_mismatch":    "Payment amounts do not add up to the order total",
		"error.allocation_empty":             "At least one payment is required",
		"error.inventory_unavailable":        "Some items are no longer available",
		"error.status_transition":            "Order status change not allowed",
		"error.order_not_cancelable":         "Order can no longer be canceled",
		"error.order_not_eligible_post_sale": "Only delivered orders accept return or exchange requests",
		"error.post_sale_not_delivered":      "Only delivered orders accept return or exchange requests",
		"error.post_sale_not_found":          "Return or exchange request not found",
		"error.post_sale_items":              "Selected items do not belong to this order",
		"error.post_sale_items_invalid":      "Selected items do not belong to this order",
		"error.post_sale_transition":         "Request status change not allowed",
		"error.post_sale_not_cancelable":     "Request can no longer be canceled",
		"error.post_sale_create_failed":      "Failed to create the request",
		"error.post_sale_fetch_failed":       "Failed to load requests",
		"error.post_sale_cancel_failed":      "Failed to cancel the request",
		"error.post_sale_update_failed":      "Failed to update the request",
		"error.post_sale_status_invalid":     "Request status change not allowed",
		"error.stock_intake_failed":          "Failed to register stock intake",
		"error.stock_fetch_failed":           "Failed to load stock units",
		"error.stock_update_failed":          "Failed to update stock unit",
		"error.stock_unit_not_found":         "Stock unit not found",
		"error.stock_unit_status_invalid":    "Stock unit status change not allowed",
		"error.dashboard_range_invalid":      "Dashboard range is invalid",
		"error.dashboard_fetch_failed":       "Failed to load dashboard data",
		"order.status.processing":            "awaiting payment confirmation",
		"order.status.approved":              "payment approved",
		"order.status.rejected":              "payment rejected",
		"order.status.shipping":              "being prepared for shipment",
		"order.status.shipped":               "shipped",
		"order.status.delivered":             "delivered",
		"order.status.canceled":              "canceled",
		"email.order_status.subject":         "Your order is %s",
		"email.order_status.body":            "Hello %s,\n\nYour order %s (%d item(s), total %s) is now %s.\n\nThank you for shopping with us.",
		"success.ok":                         "OK",
	},
	"pt-BR": {
		"error.bad_request":                  "Requisição inválida",
		"error.internal":                     "Erro interno do servidor",
		"error.save_failed":                  "Falha ao salvar os dados",
		"error.not_found":                    "Recurso não encontrado",
		"error.unauthorized":                 "Não autorizado",
		"error.forbidden":                    "Acesso negado",
		"error.auth_header_missing":          "Cabeçalho de autorização ausente",
		"error.auth_header_invalid":          "Cabeçalho de autorização inválido",
		"error.token_invalid":                "Token inválido ou expirado",
		"error.token_revoked":                "Token revogado",
		"error.jwt_secret_missing":           "Segredo JWT não configurado",
		"error.user_disabled":                "Conta desativada",
		"error.user_not_found":               "Usuário não encontrado",
		"error.login_failed":                 "Credenciais inválidas",
		"error.password_old_invalid":         "Senha atual incorreta",
		"error.password_weak":                "Senha muito fraca",
		"error.password_min_length":          "A senha deve ter pelo menos %d caracteres",
		"error.password_require_upper":       "A senha deve conter uma letra maiúscula",
		"error.password_require_lower":       "A senha deve conter uma letra minúscula",
		"error.password_require_number":      "A senha deve conter um número",
		"error.password_require_special":     "A senha deve conter um caractere especial",
		"error.email_taken":                  "E-mail já cadastrado",
		"error.captcha_required":             "Captcha obrigatório",
		"error.captcha_invalid":              "Falha na verificação do captcha",
		"error.captcha_verify_failed":        "Não foi possível verificar o captcha",
		"error.captcha_generate_failed":      "Não foi possível gerar o captcha",
		"error.rate_limited":                 "Muitas tentativas, tente novamente mais tarde",
		"error.rate_limit_unavailable":       "Limitador de requisições indisponível",
		"error.login_invalid":                "E-mail ou senha inválidos",
		"error.login_too_many":               "Muitas tentativas de login, tente novamente mais tarde",
		"error.register_failed":              "Falha no cadastro",
		"error.old_password_invalid":         "Senha atual incorreta",
		"error.password_change_failed":       "Falha ao alterar a senha",
		"error.profile_update_failed":        "Falha ao atualizar o perfil",
		"error.user_fetch_failed":            "Falha ao carregar a conta",
		"error.user_update_failed":           "Falha ao atualizar a conta",
		"error.customer_id_invalid":          "Identidade do cliente ausente",
		"error.customer_id_type_invalid":     "Identidade do cliente malformada",
		"error.admin_id_invalid":             "Identidade do administrador ausente",
		"error.admin_id_type_invalid":        "Identidade do administrador malformada",
		"error.admin_not_found":              "Administrador não encontrado",
		"error.admin_fetch_failed":           "Falha ao carregar administradores",
		"error.admin_save_failed":            "Falha ao salvar administrador",
		"error.admin_username_taken":         "Nome de usuário já em uso",
		"error.admin_delete_self":            "Não é possível excluir a própria conta",
		"error.admin_delete_super":           "Não é possível excluir um super administrador",
		"error.admin_delete_failed":          "Falha ao excluir administrador",
		"error.authz_fetch_failed":           "Falha ao carregar permissões",
		"error.authz_role_invalid":           "Nome de papel inválido",
		"error.authz_policy_invalid":         "Regra de permissão inválida",
		"error.book_not_found":               "Livro não encontrado",
		"error.book_inactive":                "Livro indisponível para venda",
		"error.book_fetch_failed":            "Falha ao carregar livros",
		"error.book_save_failed":             "Falha ao salvar livro",
		"error.book_isbn_taken":              "Já existe um livro com este ISBN",
		"error.book_status_invalid":          "Status do livro inválido",
		"error.out_of_stock":                 "Estoque insuficiente",
		"error.cart_empty":                   "Carrinho vazio",
		"error.cart_line_not_found":          "Item não está no carrinho",
		"error.cart_update_failed":           "Falha ao atualizar o carrinho",
		"error.coupon_invalid":               "Cupom inválido",
		"error.coupon_expired":               "Cupom expirado",
		"error.coupon_used":                  "Cupom já utilizado",
		"error.coupon_not_found":             "Cupom não encontrado",
		"error.coupon_used_immutable":        "Um cupom utilizado não pode mais ser alterado",
		"error.coupon_input_invalid":         "Dados do cupom inválidos",
		"error.coupon_fetch_failed":          "Falha ao carregar cupons",
		"error.coupon_save_failed":           "Falha ao salvar cupom",
		"error.order_not_found":              "Pedido não encontrado",
		"error.order_quote_failed":           "Falha ao calcular o pedido",
		"error.order_create_failed":          "Falha ao fechar o pedido",
		"error.order_fetch_failed":           "Falha ao carregar pedidos",
		"error.order_cancel_failed":          "Falha ao cancelar o pedido",
		"error.order_update_failed":          "Falha ao atualizar o pedido",
		"error.order_status_invalid":         "Mudança de status do pedido não permitida",
		"error.order_transition_illegal":     "O pedido não pode passar de %s para %s",
		"error.address_not_found":            "Endereço não encontrado",
		"error.address_fetch_failed":         "Falha ao carregar endereços",
		"error.address_save_failed":          "Falha ao salvar endereço",
		"error.address_delete_failed":        "Falha ao excluir endereço",
		"error.card_not_found":               "Cartão não encontrado",
		"error.card_invalid":                 "Dados do cartão inválidos",
		"error.card_fetch_failed":            "Falha ao carregar cartões",
		"error.card_save_failed":             "Falha ao salvar cartão",
		"error.card_delete_failed":           "Falha ao excluir cartão",
		"error.brand_not_found":              "Bandeira não encontrada",
		"error.brand_fetch_failed":           "Falha ao carregar bandeiras",
		"error.brand_save_failed":            "Falha ao salvar bandeira",
		"error.brand_delete_failed":          "Falha ao excluir bandeira",
		"error.allocation_amount":            "Cada pagamento deve ser maior que zero",
		"error.allocation_amount_invalid":    "Cada pagamento deve ser maior que zero",
		"error.allocation_minimum":           "Cada cartão deve pagar pelo menos %s ao dividir entre cartões",
		"error.allocation_minimum_short":     "Um pagamento está abaixo do mínimo por cartão",
		"error.allocation_mismatch":          "Os pagamentos não somam o total do pedido",
		"error.allocation_total_mismatch":    "Os pagamentos não somam o total do pedido",
		"error.allocation_empty":             "Pelo menos um pagamento é obrigatório",
		"error.inventory_unavailable":        "Alguns itens não estão mais disponíveis",
		"error.status_transition":            "Mudança de status do pedido não permitida",
		"error.order_not_cancelable":         "O pedido não pode mais ser cancelado",
		"error.order_not_eligible_post_sale": "Apenas pedidos entregues aceitam troca ou devolução",
		"error.post_sale_not_delivered":      "Apenas pedidos entregues aceitam troca ou devolução",
		"error.post_sale_not_found":          "Solicitação de troca ou devolução não encontrada",
		"error.post_sale_items":              "Itens selecionados não pertencem a este pedido",
		"error.post_sale_items_invalid":      "Itens selecionados não pertencem a este pedido",
		"error.post_sale_transition":         "Mudança de status da solicitação não permitida",
		"error.post_sale_not_cancelable":     "A solicitação não pode mais ser cancelada",
		"error.post_sale_create_failed":      "Falha ao criar a solicitação",
		"error.post_sale_fetch_failed":       "Falha ao carregar solicitações",
		"error.post_sale_cancel_failed":      "Falha ao cancelar a solicitação",
		"error.post_sale_update_failed":      "Falha ao atualizar a solicitação",
		"error.post_sale_status_invalid":     "Mudança de status da solicitação não permitida",
		"error.stock_intake_failed":          "Falha ao registrar entrada de estoque",
		"error.stock_fetch_failed":           "Falha ao carregar unidades de estoque",
		"error.stock_update_failed":          "Falha ao atualizar unidade de estoque",
		"error.stock_unit_not_found":         "Unidade de estoque não encontrada",
		"error.stock_unit_status_invalid":    "Mudança de status da unidade não permitida",
		"error.dashboard_range_invalid":      "Intervalo do painel inválido",
		"error.dashboard_fetch_failed":       "Falha ao carregar dados do painel",
		"order.status.processing":            "aguardando confirmação do pagamento",
		"order.status.approved":              "pagamento aprovado",
		"order.status.rejected":              "pagamento recusado",
		"order.status.shipping":              "em preparação para envio",
		"order.status.shipped":               "enviado",
		"order.status.delivered":             "entregue",
		"order.status.canceled":              "cancelado",
		"email.order_status.subject":         "Seu pedido está %s",
		"email.order_status.body":            "Olá %s,\n\nSeu pedido %s (%d item(ns), total %s) agora está %s.\n\nObrigado por comprar conosco.",
		"success.ok":                         "OK",
	},
}
