// Package texts keeps every user-visible string and button label in one
// place, so flows reference labels instead of repeating literals.
package texts

// Main menu.
const (
	Welcome = "Привет, это SelFil бот для автоматического заказа продуктов и товаров, контроля остатков и сроков годности."

	MainMenuTitle = "Главное меню"

	BtnChooseProduct   = "Выбрать продукт"
	BtnChooseContainer = "Выбрать контейнер"
	BtnSetupAutoOrder  = "Настроить автозаказ продуктов"
	BtnOrderContainer  = "Заказать контейнер"
	BtnBackToMenu      = "< Назад в меню!"
)

// Cart flow.
const (
	ChooseProductPrompt = "Выберите продукт:"

	BtnMilk      = "Молоко"
	BtnEggs      = "Яйца"
	BtnCheese    = "Сыр"
	BtnBuckwheat = "Гречка"

	BtnFinishPurchase = "Закончить покупку"

	ProductAddedFmt   = "Вы добавили %s. Теперь у вас %d в корзине."
	CartSummaryHeader = "Ваш список покупок:"
	CartEmpty         = "Ваша корзина пуста."
)

// Auto-order wizard.
const (
	AutoOrderMenuPrompt = "Выберите параметр для настройки автозаказа:"

	BtnInterval        = "Интервал автозаказа"
	BtnProductList     = "Список продуктов для автозаказа"
	BtnMinimum         = "Минимальный остаток продуктов"
	BtnFinishAutoOrder = "Завершить настройку автозаказа"

	ChooseIntervalPrompt = "Выберите интервал автозаказа:"

	BtnDaily   = "Ежедневно"
	BtnWeekly  = "Еженедельно"
	BtnMonthly = "Ежемесячно"

	IntervalSetFmt = "Интервал автозаказа установлен: %s."

	ChooseAutoOrderProductPrompt = "Выберите продукт для автозаказа:"

	BtnGroats = "Крупа"
	BtnKefir  = "Кефир"
	BtnButter = "Масло"
	BtnBread  = "Хлеб"

	BtnFinishProducts = "Закончить выбор продуктов"

	AutoOrderProductAddedFmt = "Продукт %s добавлен в список для автозаказа."
	ProductListDone          = "Список продуктов для автозаказа настроен."

	EnterMinimumPrompt = "Введите минимальный остаток продукта."
	MinimumSetFmt      = "Минимальный остаток продуктов установлен: %s."

	AutoOrderSummaryFmt = "Автозаказ настроен:\nИнтервал: %s\nПродукты: %s\nМинимальный остаток: %s"
	AutoOrderIncomplete = "Пожалуйста, завершите настройку всех параметров автозаказа."
)

// Container flow.
const (
	ContainerPrompt    = "Отсканируйте QR код или введите номер контейнера."
	ContainerChosenFmt = "Контейнер %s выбран. Выберите действие:"

	BtnViewContents  = "Просмотреть содержимое"
	BtnAddProduct    = "Добавить продукт"
	BtnRemoveProduct = "Удалить продукт"
	BtnContainerInfo = "Информация о контейнере"

	ContainerContentsFmt = "Содержимое контейнера %s:\n%s"
	ContainerInfoFmt     = "Информация о контейнере %s:\n- Дата создания: %s\n- Тип контейнера: %s"
	ContainerUnavailable = "Не удалось получить данные контейнера."

	AddProductPrompt    = "Введите название продукта, который вы хотите добавить в контейнер."
	RemoveProductPrompt = "Введите название продукта, который вы хотите удалить из контейнера."

	ProductAddedToContainerFmt     = "Продукт %s добавлен в контейнер %s."
	ProductRemovedFromContainerFmt = "Продукт %s удален из контейнера %s."

	OrderContainerReply = "Выберите тип и размер контейнера на сайте [Selfil](http://www.Selfil.com)"
)

// Quick single-product auto-order.
const (
	QuickEnterContainerPrompt = "Введите номер контейнера для автозаказа."
	QuickSummaryFmt           = "Автозаказ настроен:\nПродукт: %s\nКонтейнер: %s\nМинимальный остаток: %s\nИнтервал: %s"
)
